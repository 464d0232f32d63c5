package internal

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// CalculateDirSize returns the total size in bytes of every file below dirPath.
//
// Files that vanish or can't be stat'd are skipped, and so are directories that can't be read. The walk
// itself never fails. Symlinked directories are not descended into; symlinked files count the size of
// their target.
func CalculateDirSize(dirPath string) uint64 {
	var totalSize uint64

	root := dirPath

	// WalkDir won't descend into a symlinked root, so resolve it first
	if resolved, err := filepath.EvalSymlinks(dirPath); err == nil {
		root = resolved
	}

	_ = filepath.WalkDir(root, func(path string, dirEntry fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("Skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if dirEntry.IsDir() {
			return nil
		}

		size, ok := fileSize(path, dirEntry)

		if !ok {
			return nil
		}

		totalSize += size

		return nil
	})

	return totalSize
}

// IsDirectory reports whether path exists and is a directory, following symlinks
func IsDirectory(path string) bool {
	info, err := os.Stat(path)

	if err != nil {
		return false
	}

	return info.IsDir()
}

func fileSize(path string, dirEntry fs.DirEntry) (uint64, bool) {
	var info os.FileInfo
	var err error

	if dirEntry.Type()&fs.ModeSymlink != 0 {
		// Follow the link, dangling links fail here and are skipped
		if info, err = os.Stat(path); err != nil {
			log.Debug("Skipping file", "path", path, "error", err)
			return 0, false
		}

		if info.IsDir() {
			return 0, false
		}
	} else if info, err = dirEntry.Info(); err != nil {
		// Usually the file was removed between the directory read and now
		log.Debug("Skipping file", "path", path, "error", err)
		return 0, false
	}

	if info.Size() < 0 {
		return 0, false
	}

	return uint64(info.Size()), true
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/kelllyy1/tools/internal"
	"github.com/muesli/reflow/padding"
)

const (
	nameColumnWidth = 40
	sizeColumnWidth = 10
	ruleWidth       = 55
)

// AppUsage is the total size of one application directory
type AppUsage struct {
	Name string
	Size uint64
}

// ScanDirs sizes every immediate subdirectory of each root. Roots that don't exist or can't be listed are
// skipped.
func ScanDirs(roots []string) []AppUsage {
	var usage []AppUsage

	for _, root := range roots {
		if !internal.IsDirectory(root) {
			log.Debug("Skipping missing directory", "path", root)
			continue
		}

		entries, err := os.ReadDir(root)

		if err != nil {
			log.Debug("Skipping unreadable directory", "path", root, "error", err)
			continue
		}

		for _, entry := range entries {
			itemPath := filepath.Join(root, entry.Name())

			// Symlinks to directories count as applications too
			if !internal.IsDirectory(itemPath) {
				continue
			}

			size := internal.CalculateDirSize(itemPath)

			log.Debug("Sized application", "name", entry.Name(), "bytes", internal.PrettyPrintInt(size))

			usage = append(usage, AppUsage{Name: entry.Name(), Size: size})
		}
	}

	return usage
}

// TopN returns at most n entries of usage, largest first. usage itself is left untouched.
func TopN(usage []AppUsage, n int) []AppUsage {
	sorted := make([]AppUsage, len(usage))
	copy(sorted, usage)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Size != sorted[j].Size {
			return sorted[i].Size > sorted[j].Size
		}

		return sorted[i].Name < sorted[j].Name
	})

	if n < 0 {
		n = 0
	}

	if n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted
}

// PrintResults writes the top n entries of usage to w as a table with sizes in gigabytes
func PrintResults(w io.Writer, usage []AppUsage, n int) {
	renderer := lipgloss.NewRenderer(w)
	headingStyle := renderer.NewStyle().Bold(true)

	title := fmt.Sprintf("Top %d space-consuming applications:", n)
	header := fmt.Sprintf("%s %*s", padding.String("Application", nameColumnWidth), sizeColumnWidth, "Size (GB)")

	fmt.Fprintf(w, "\n%s\n\n", headingStyle.Render(title))
	fmt.Fprintln(w, headingStyle.Render(header))
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	for _, app := range TopN(usage, n) {
		gigabytes := internal.PrettyPrintFloat(internal.BytesToGigabytes(app.Size), 2)

		fmt.Fprintf(w, "%s %*s\n", padding.String(app.Name, nameColumnWidth), sizeColumnWidth, gigabytes)
	}
}

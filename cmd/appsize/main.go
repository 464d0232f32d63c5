package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/kelllyy1/tools/internal"
	"github.com/kelllyy1/tools/internal/version"
)

// defaultRoots returns the usual application install locations for goos
func defaultRoots(goos string, getenv func(string) string, home string) []string {
	switch goos {
	case "windows":
		userProfile := internal.FirstNonEmpty(getenv("USERPROFILE"), home)

		return []string{
			internal.FirstNonEmpty(getenv("ProgramFiles"), `C:\Program Files`),
			internal.FirstNonEmpty(getenv("ProgramFiles(x86)"), `C:\Program Files (x86)`),
			filepath.Join(userProfile, "AppData", "Local", "Programs"),
		}
	case "darwin":
		return []string{
			"/Applications",
			filepath.Join(home, "Applications"),
		}
	default:
		return []string{
			"/opt",
			"/usr/local",
			filepath.Join(home, ".local", "share"),
		}
	}
}

func main() {
	var topCount int
	var debug bool
	var showVersion bool

	flag.IntVar(&topCount, "top", 10, "Number of applications to display")
	flag.BoolVar(&debug, "debug", false, "Log skipped directories and files")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Optionally, you can specify the directories to scan after the options.\n")
		fmt.Fprintf(os.Stderr, "  (e.g. `%s -top 5 /opt ~/Applications`)\n", os.Args[0])
	}

	flag.Parse()

	if showVersion {
		fmt.Println(version.String("appsize"))
		os.Exit(0)
	}

	if topCount < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if debug {
		log.SetLevel(log.DebugLevel)
	}

	roots := flag.Args()

	if len(roots) == 0 {
		home, err := os.UserHomeDir()

		if err != nil {
			log.Warn("Couldn't find the home directory", "error", err)
		}

		roots = defaultRoots(runtime.GOOS, os.Getenv, home)
	}

	log.Debug("Scanning", "roots", roots)

	PrintResults(os.Stdout, ScanDirs(roots), topCount)
}

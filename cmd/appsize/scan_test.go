package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}

	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func usageByName(usage []AppUsage) map[string]uint64 {
	result := map[string]uint64{}

	for _, app := range usage {
		result[app.Name] = app.Size
	}

	return result
}

func TestScanDirsSumsEachSubdirectory(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "editor", "bin", "editor.exe"), 1000)
	writeFile(t, filepath.Join(root, "editor", "lib", "core.dll"), 250)
	writeFile(t, filepath.Join(root, "editor", "readme.txt"), 5)
	writeFile(t, filepath.Join(root, "browser", "browser.exe"), 300)
	writeFile(t, filepath.Join(root, "stray-file.txt"), 9999)

	if err := os.MkdirAll(filepath.Join(root, "empty"), 0755); err != nil {
		t.Fatalf("Failed to create empty dir: %v", err)
	}

	got := usageByName(ScanDirs([]string{root}))

	expected := map[string]uint64{"editor": 1255, "browser": 300, "empty": 0}

	if len(got) != len(expected) {
		t.Fatalf("ScanDirs() returned %v, want %v", got, expected)
	}

	for name, size := range expected {
		if got[name] != size {
			t.Errorf("size of %s = %d, want %d", name, got[name], size)
		}
	}
}

func TestScanDirsSkipsVanishedFiles(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "app", "real.bin"), 42)

	// A dangling link behaves like a file that disappeared mid-walk
	if err := os.Symlink(filepath.Join(root, "does-not-exist"), filepath.Join(root, "app", "gone.bin")); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	got := usageByName(ScanDirs([]string{root}))

	if got["app"] != 42 {
		t.Errorf("size of app = %d, want 42", got["app"])
	}
}

func TestScanDirsFollowsFileLinksButNotDirectoryLinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()

	writeFile(t, filepath.Join(outside, "big.bin"), 700)
	writeFile(t, filepath.Join(root, "app", "own.bin"), 10)

	if err := os.Symlink(filepath.Join(outside, "big.bin"), filepath.Join(root, "app", "linked.bin")); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	if err := os.Symlink(outside, filepath.Join(root, "app", "linked-dir")); err != nil {
		t.Fatalf("Failed to create directory link: %v", err)
	}

	got := usageByName(ScanDirs([]string{root}))

	if got["app"] != 710 {
		t.Errorf("size of app = %d, want 710", got["app"])
	}
}

func TestScanDirsSkipsMissingRoots(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "app", "file.bin"), 3)

	got := ScanDirs([]string{filepath.Join(root, "nope"), filepath.Join(root, "app", "file.bin"), root})

	if len(got) != 1 || got[0].Name != "app" || got[0].Size != 3 {
		t.Errorf("ScanDirs() = %v, want [{app 3}]", got)
	}
}

func TestTopN(t *testing.T) {
	usage := []AppUsage{
		{Name: "small", Size: 10},
		{Name: "huge", Size: 1000},
		{Name: "medium", Size: 500},
		{Name: "also-medium", Size: 500},
	}

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{"top two", 2, []string{"huge", "also-medium"}},
		{"all", 4, []string{"huge", "also-medium", "medium", "small"}},
		{"more than available", 10, []string{"huge", "also-medium", "medium", "small"}},
		{"none", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopN(usage, tt.n)

			if len(got) != len(tt.expected) {
				t.Fatalf("TopN(%d) returned %d entries, want %d", tt.n, len(got), len(tt.expected))
			}

			for i, name := range tt.expected {
				if got[i].Name != name {
					t.Errorf("TopN(%d)[%d] = %s, want %s", tt.n, i, got[i].Name, name)
				}
			}
		})
	}

	if usage[0].Name != "small" {
		t.Error("TopN should not reorder its input")
	}
}

func TestPrintResults(t *testing.T) {
	t.Setenv("LC_ALL", "en_US")

	const gigabyte = 1024 * 1024 * 1024

	usage := []AppUsage{
		{Name: "Tiny", Size: gigabyte / 100},
		{Name: "Games", Size: 3 * gigabyte / 2},
		{Name: "Office", Size: gigabyte / 4},
	}

	var output bytes.Buffer

	PrintResults(&output, usage, 2)

	text := output.String()
	lines := strings.Split(text, "\n")

	if !strings.Contains(text, "Top 2 space-consuming applications:") {
		t.Errorf("Missing title in output:\n%s", text)
	}

	if !strings.Contains(text, strings.Repeat("-", 55)+"\n") {
		t.Errorf("Missing rule in output:\n%s", text)
	}

	expectedRows := []string{
		"Games" + strings.Repeat(" ", 35) + " " + "      1.50",
		"Office" + strings.Repeat(" ", 34) + " " + "      0.25",
	}

	for _, row := range expectedRows {
		found := false

		for _, line := range lines {
			if line == row {
				found = true
			}
		}

		if !found {
			t.Errorf("Missing row %q in output:\n%s", row, text)
		}
	}

	if strings.Contains(text, "Tiny") {
		t.Errorf("Only the top 2 rows should be printed:\n%s", text)
	}

	if strings.Index(text, "Games") > strings.Index(text, "Office") {
		t.Errorf("Rows should be sorted largest first:\n%s", text)
	}
}

func TestDefaultRoots(t *testing.T) {
	env := map[string]string{"ProgramFiles": `D:\Apps`}
	getenv := func(key string) string { return env[key] }

	windows := defaultRoots("windows", getenv, "/home/someone")

	if len(windows) != 3 {
		t.Fatalf("expected 3 windows roots, got %v", windows)
	}

	if windows[0] != `D:\Apps` {
		t.Errorf("ProgramFiles should come from the environment, got %s", windows[0])
	}

	if windows[1] != `C:\Program Files (x86)` {
		t.Errorf("ProgramFiles(x86) should fall back to the default, got %s", windows[1])
	}

	if !strings.HasPrefix(windows[2], "/home/someone") || !strings.Contains(windows[2], "Programs") {
		t.Errorf("USERPROFILE should fall back to the home directory, got %s", windows[2])
	}

	linux := defaultRoots("linux", getenv, "/home/someone")

	if linux[len(linux)-1] != filepath.Join("/home/someone", ".local", "share") {
		t.Errorf("unexpected linux roots: %v", linux)
	}
}

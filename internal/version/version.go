// Package version holds build-time version information for appsize and langbadges.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/kelllyy1/tools/internal/version.GitHash=$(git rev-parse --short=7 HEAD) \
//	                   -X github.com/kelllyy1/tools/internal/version.GitDirty=$(if git diff --quiet 2>/dev/null; then echo clean; else echo dirty; fi) \
//	                   -X github.com/kelllyy1/tools/internal/version.Version=0.1.0" ./cmd/...
package version

import "fmt"

var (
	// Version is the semantic version, e.g. "0.1.0"
	Version = "0.1.0"
	// GitHash is the short commit hash, "unknown" for plain `go build`
	GitHash = "unknown"
	// GitDirty is "dirty", "clean", or "unknown"
	GitDirty = "unknown"
)

// String formats the version for toolName, e.g. "langbadges 0.1.0 (abc1234, clean)"
func String(toolName string) string {
	return fmt.Sprintf("%s %s", toolName, Short())
}

// Short formats the version without a tool name, e.g. "0.1.0 (abc1234, clean)"
func Short() string {
	return fmt.Sprintf("%s (%s, %s)", Version, GitHash, GitDirty)
}

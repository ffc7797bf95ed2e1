// Package build provides version and build information for gh-notifier.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import "fmt"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// UserAgent returns the User-Agent sent to the GitHub API.
func UserAgent() string {
	return fmt.Sprintf("gh-notifier/%s", Version)
}

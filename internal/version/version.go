// Package version holds the colormix build stamp.
package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/jmylchreest/colormix/internal/version.<Name>=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const shortCommit = 8

func platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// String returns the line printed by "colormix version" and --version.
// Commit and date are included only when both were stamped.
func String() string {
	if Commit == "unknown" || Date == "unknown" {
		return fmt.Sprintf("colormix version %s (%s, %s)", Version, runtime.Version(), platform())
	}
	commit := Commit
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}
	return fmt.Sprintf("colormix version %s (commit: %s, built: %s, %s, %s)",
		Version, commit, Date, runtime.Version(), platform())
}

// Short returns the bare version.
func Short() string {
	return Version
}

package version // import "github.com/Xunop/gutenshelf/internal/version"

import "fmt"

// Overridden at build time with -ldflags "-X github.com/Xunop/gutenshelf/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "HEAD"
	BuildDate = "undefined"
)

// GetCurrentVersion returns the version string served on /version.
func GetCurrentVersion() string {
	return Version
}

// Info is the long form printed by the version command.
func Info() string {
	return fmt.Sprintf("gutenshelf %s (commit %s, built %s)", Version, Commit, BuildDate)
}

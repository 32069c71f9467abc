package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the cleaner
	Version = "1.0.0"

	// DataFormatVersion is the version of the cleaned-output schema
	DataFormatVersion = "v1"
)

var (
	// BuildTime is set during build using ldflags
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags
	GitCommit = "unknown"
)

// GetVersionString returns a formatted version string
func GetVersionString() string {
	return fmt.Sprintf("giclean v%s", Version)
}

// GetFullVersionString returns a detailed version string for -version output
func GetFullVersionString() string {
	return fmt.Sprintf("%s (built: %s, commit: %s, go: %s, os: %s/%s)",
		GetVersionString(), BuildTime, GitCommit,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

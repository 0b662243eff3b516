// Package version carries build identification, populated via -ldflags.
package version

var (
	// Version is the release version of core-report
	Version = "dev"
	// GitSHA is the git commit the binary was built from
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

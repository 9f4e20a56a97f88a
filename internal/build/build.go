// Package build provides the build information injected at link time.
package build

// These values are overridden with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Package version exposes build metadata injected at link time:
//
//	go build -ldflags "-X github.com/rshade/footprint/pkg/version.version=v1.2.3"
package version

//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns the version with commit and date, for --version output.
func String() string {
	return version + " (commit " + gitCommit + ", built " + buildDate + ")"
}

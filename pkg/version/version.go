// Package version exposes build metadata injected via -ldflags.
package version

import "github.com/Masterminds/semver/v3"

// Set at build time:
//
//	go build -ldflags "-X github.com/rshade/fieldcarbon/pkg/version.version=1.4.0"
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
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

// Parsed returns the version as semver, or nil when it does not parse.
func Parsed() *semver.Version {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}
	return v
}

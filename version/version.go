// Package version holds build-time version information.
//
// The variables are set via -ldflags at build time:
//
//	go build -ldflags "-X github.com/pdftoolbox/pdftoolbox/version.GitRelease=v1.0.0"
package version

import "runtime"

var (
	// GitRelease is the git tag or release name.
	GitRelease = "dev"
	// GitCommit is the git commit hash.
	GitCommit = "unknown"
	// GitCommitDate is the date of the git commit.
	GitCommitDate = "unknown"
	// GoInfo is the Go toolchain version used for the build.
	GoInfo = runtime.Version()
)

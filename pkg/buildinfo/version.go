// Package buildinfo provides build-time version information.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/wordladder/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/wordladder/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/wordladder/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries installed with "go install" carry no ldflags; for those the module
// version and VCS revision recorded by the Go toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build metadata, falling back to the toolchain's embedded
// build info for values not set via ldflags.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String returns the formatted build information.
func String() string {
	i := Get()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template returns the version template string for cobra.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}

package apetag

import (
	"runtime"
	"runtime/debug"
)

// Version is the release of the apetag module and command.
const Version = "1.0.0"

// GetVersion returns the release string printed by "apetag -version".
func GetVersion() string {
	return Version
}

// VersionInfo describes the build that is running.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns build details for "apetag -version".
//
// Release builds stamp the commit and time through -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/apetag.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/apetag.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/apetag
//
// A plain "go install github.com/simonhull/apetag/cmd/apetag@latest" has no
// ldflags; the VCS stamp Go embeds in the binary is used instead. Fields
// that neither source provides read "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && s.Value != "" {
				info.GitCommit = shortCommit(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == "unknown" && s.Value != "" {
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

func shortCommit(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// Set with -ldflags -X for release builds.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

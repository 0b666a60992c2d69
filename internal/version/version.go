/*
Package version reports the icon-hub-mcp build.

Release builds stamp the values with ldflags:

	go build -ldflags "-X github.com/khanglvm/icon-hub-mcp/internal/version.Version=v1.0.0 \
	  -X github.com/khanglvm/icon-hub-mcp/internal/version.Commit=abc1234 \
	  -X github.com/khanglvm/icon-hub-mcp/internal/version.Date=2026-01-02" ./cmd/icon-hub-mcp

Binaries installed with `go install` carry no ldflags; their module version
and VCS revision are read from the embedded build info instead.
*/
package version

import (
	"fmt"
	"runtime/debug"
)

const devVersion = "dev"

var (
	// Version is the release tag, e.g. v1.0.1.
	Version = devVersion
	// Commit is the short commit hash.
	Commit = "none"
	// Date is the UTC build date (YYYY-MM-DD).
	Date = "unknown"
)

// GetVersion returns the display string shown by the root command.
func GetVersion() string {
	return FormatVersion(GetVersionComponents())
}

// FormatVersion formats version components into a display string.
func FormatVersion(version, commit, date string) string {
	if version == devVersion {
		return version + " (development build)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// GetVersionComponents returns the stamped values, falling back to the
// embedded build info for unstamped binaries.
func GetVersionComponents() (version, commit, date string) {
	version, commit, date = Version, Commit, Date
	if version != devVersion {
		return version, commit, date
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}
	return fromBuildInfo(info, version, commit, date)
}

func fromBuildInfo(info *debug.BuildInfo, version, commit, date string) (string, string, string) {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 7 {
				commit = s.Value[:7]
			} else if s.Value != "" {
				commit = s.Value
			}
		case "vcs.time":
			if len(s.Value) >= 10 {
				date = s.Value[:10]
			}
		}
	}
	return version, commit, date
}

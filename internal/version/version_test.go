package version

import (
	"runtime/debug"
	"testing"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"dev", "none", "unknown", "dev (development build)"},
		{"v1.2.0", "abc123", "2026-01-02", "v1.2.0 (commit: abc123, built: 2026-01-02)"},
	}

	for _, tt := range tests {
		if got := FormatVersion(tt.version, tt.commit, tt.date); got != tt.want {
			t.Errorf("FormatVersion(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestGetVersionComponentsStamped(t *testing.T) {
	saved := Version
	Version = "v9.9.9"
	defer func() { Version = saved }()

	v, c, d := GetVersionComponents()
	if v != "v9.9.9" || c != Commit || d != Date {
		t.Errorf("unexpected components %q %q %q", v, c, d)
	}
}

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        debug.BuildInfo
		wantVersion string
		wantCommit  string
		wantDate    string
	}{
		{
			name:        "devel build keeps defaults",
			info:        debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			wantVersion: "dev", wantCommit: "none", wantDate: "unknown",
		},
		{
			name: "go install with vcs stamp",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "v1.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
				},
			},
			wantVersion: "v1.3.0", wantCommit: "0123456", wantDate: "2026-03-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, d := fromBuildInfo(&tt.info, "dev", "none", "unknown")
			if v != tt.wantVersion || c != tt.wantCommit || d != tt.wantDate {
				t.Errorf("got %q %q %q, want %q %q %q", v, c, d, tt.wantVersion, tt.wantCommit, tt.wantDate)
			}
		})
	}
}

package version

import (
	"runtime/debug"
	"testing"
	"time"
)

func TestCurrentPrefersBuildVersion(t *testing.T) {
	old := buildVersion
	buildVersion = "v1.2.3"
	t.Cleanup(func() { buildVersion = old })

	if got := Current(); got != "v1.2.3" {
		t.Fatalf("expected build version, got %q", got)
	}
}

func TestFromVCS(t *testing.T) {
	ts := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{
			name: "dirty",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "1234567890abcdef"},
				{Key: "vcs.time", Value: ts.Format(time.RFC3339)},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "v0.0.0-20250102030405-1234567890ab+dirty",
		},
		{
			name: "clean",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.time", Value: ts.Format(time.RFC3339)},
			},
			want: "v0.0.0-20250102030405-abc",
		},
		{
			name:     "no revision",
			settings: []debug.BuildSetting{{Key: "vcs.time", Value: ts.Format(time.RFC3339)}},
			want:     "",
		},
		{
			name: "bad time",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.time", Value: "yesterday"},
			},
			want: "",
		},
	}
	for _, tc := range tests {
		if got := fromVCS(tc.settings); got != tc.want {
			t.Fatalf("%s: fromVCS = %q, want %q", tc.name, got, tc.want)
		}
	}
}

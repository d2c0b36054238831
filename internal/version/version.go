package version

import (
	"runtime/debug"
	"strings"
	"time"
)

// buildVersion is set with -ldflags "-X github.com/ripxorip/aerojump.nvim/internal/version.buildVersion=v1.2.3".
var buildVersion = ""

const unknown = "v0.0.0-unknown"

// Current returns the release tag, the module version, or a pseudo version
// derived from VCS build settings, in that order.
func Current() string {
	if v := strings.TrimSpace(buildVersion); v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknown
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	if v := fromVCS(info.Settings); v != "" {
		return v
	}
	return unknown
}

func fromVCS(settings []debug.BuildSetting) string {
	var revision, stamp string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			stamp = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" || stamp == "" {
		return ""
	}
	at, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return ""
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := "v0.0.0-" + at.UTC().Format("20060102150405") + "-" + revision
	if dirty {
		v += "+dirty"
	}
	return v
}

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"bare", Info{Version: "dev"}, "dev"},
		{"commit only", Info{Version: "v1.2.0", Commit: "0123456789abcdef"}, "v1.2.0 (commit 0123456789ab)"},
		{"full", Info{Version: "v1.2.0", Commit: "abc123", Date: "2026-01-02"}, "v1.2.0 (commit abc123, built 2026-01-02)"},
		{"dirty", Info{Version: "dev", Commit: "abc123", Modified: true}, "dev (commit abc123-dirty)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestFromBuildInfo(t *testing.T) {
	build := &debug.BuildInfo{
		GoVersion: "go1.25.4",
		Main:      debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "feedface"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
			{Key: "vcs.modified", Value: "false"},
		},
	}

	info := fromBuildInfo(Info{Version: "dev"}, build)
	assert.Equal(t, "v0.3.1", info.Version)
	assert.Equal(t, "feedface", info.Commit)
	assert.Equal(t, "2026-03-04T05:06:07Z", info.Date)
	assert.Equal(t, "go1.25.4", info.GoVersion)
	assert.False(t, info.Modified)
}

func TestFromBuildInfoKeepsLinkedValues(t *testing.T) {
	build := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "feedface"}},
	}

	info := fromBuildInfo(Info{Version: "v1.0.0", Commit: "abc"}, build)
	assert.Equal(t, "v1.0.0", info.Version)
	assert.Equal(t, "abc", info.Commit)

	info = fromBuildInfo(Info{Version: "dev"}, build)
	assert.Equal(t, "dev", info.Version, "(devel) is not a version")
}

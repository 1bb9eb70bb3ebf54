package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaandrew/snapreview/core"
)

func TestIgnoreFilter(t *testing.T) {
	filter, err := NewIgnoreFilter([]string{
		"lint-snap-v2:*",
		"declaration-snap-v2:plugs_connection:**",
		"msg",
	})
	require.NoError(t, err)

	tests := []struct {
		id      string
		ignored bool
		pattern string
	}{
		{"lint-snap-v2:base_allowed", true, "lint-snap-v2:*"},
		{"declaration-snap-v2:plugs_connection:cam:camera", true, "declaration-snap-v2:plugs_connection:**"},
		{"declaration-snap-v2:slots_connection:svc:dbus", false, ""},
		{"msg", true, "msg"},
		{"security-snap-v2:squashfs_files", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			pattern, ignored := filter.Ignored(core.NewFinding("c", core.LevelError, tt.id, core.Result{}))
			assert.Equal(t, tt.ignored, ignored)
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}

func TestIgnoreFilter_SingleStarStopsAtSeparator(t *testing.T) {
	filter, err := NewIgnoreFilter([]string{"declaration-snap-v2:*"})
	require.NoError(t, err)

	_, ignored := filter.Ignored(core.NewFinding("c", core.LevelError, "declaration-snap-v2:plugs_connection:cam:camera", core.Result{}))
	assert.False(t, ignored)
}

func TestIgnoreFilter_InvalidPattern(t *testing.T) {
	_, err := NewIgnoreFilter([]string{"lint-snap-v2:[base"})
	assert.Error(t, err)
}

func TestIgnoreFilter_Nil(t *testing.T) {
	var filter *IgnoreFilter
	_, ignored := filter.Ignored(core.NewFinding("c", core.LevelError, "msg", core.Result{}))
	assert.False(t, ignored)
}

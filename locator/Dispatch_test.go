package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reaandrew/snapreview/core"
)

var manifest = []string{
	"name: my-snap",
	"base: core22",
	"type: gadget",
	"confinement: classic",
	"plugs:",
	"  cam:",
	"    interface: camera",
	"slots:",
	"  dbus-svc:",
	"    interface: dbus",
	"",
}

func finding(id, text string) core.Finding {
	return core.NewFinding("snap.v2_lint", core.LevelError, id, core.Result{ManualReview: true, Text: text})
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindMessage, Classify(finding("msg", "hello")))
	assert.Equal(t, KindManifest, Classify(finding("declaration-snap-v2:plugs_connection:cam:camera", "")))
	assert.Equal(t, KindManifest, Classify(finding("lint-snap-v2:base_allowed", "")))
	assert.Equal(t, KindIgnored, Classify(finding("security-snap-v2:squashfs_files", "")))
}

func TestLocate(t *testing.T) {
	tests := []struct {
		id      string
		text    string
		want    core.Position
		located bool
	}{
		{"declaration-snap-v2:plugs_connection:cam:camera", "", core.Position{Line: 6, Col: 4}, true},
		{"declaration-snap-v2:plugs_installation:cam:camera", "", core.Position{Line: 6, Col: 4}, true},
		{"declaration-snap-v2:slots_connection:dbus-svc:dbus", "", core.Position{Line: 9, Col: 4}, true},
		{"declaration-snap-v2:slots_connection:x:network", "", core.Position{Line: 7, Col: 0}, true},
		{"declaration-snap-v2:slots_installation:dbus-svc:dbus", "", core.NotFound, false},
		{"declaration-snap-v2:plugs_connection", "", core.NotFound, false},
		{"lint-snap-v2:snap_type_redflag", "(NEEDS REVIEW) type 'gadget' not allowed", core.Position{Line: 2, Col: 0}, true},
		{"lint-snap-v2:snap_type_redflag", "(NEEDS REVIEW) type 'kernel' not allowed", core.NotFound, false},
		{"lint-snap-v2:base_interfaces", "'plugs' not allowed with base snaps", core.Position{Line: 4, Col: 0}, true},
		{"lint-snap-v2:base_interfaces", "'slots' not allowed with base snaps", core.Position{Line: 7, Col: 0}, true},
		{"lint-snap-v2:base_interfaces", "something else", core.NotFound, false},
		{"lint-snap-v2:base_allowed", "", core.Position{Line: 1, Col: 0}, true},
		{"lint-snap-v2:confinement_classic", "", core.Position{Line: 3, Col: 0}, true},
		{"lint-snap-v2:name_valid", "", core.NotFound, false},
		{"msg", "plain", core.NotFound, false},
		{"functional-snap-v2:execstack", "", core.NotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.id+"/"+tt.text, func(t *testing.T) {
			got, located := Locate(manifest, finding(tt.id, tt.text))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.located, located)
		})
	}
}

func TestLocate_KeyMissingFromManifest(t *testing.T) {
	got, located := Locate([]string{"name: foo"}, finding("lint-snap-v2:confinement_classic", ""))
	assert.True(t, located)
	assert.False(t, got.Found())
}

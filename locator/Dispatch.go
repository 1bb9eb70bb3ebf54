package locator

import "github.com/reaandrew/snapreview/core"

// Kind says how a finding is surfaced.
type Kind int

const (
	// KindIgnored findings are never reported.
	KindIgnored Kind = iota
	// KindMessage findings are reported as plain messages.
	KindMessage
	// KindManifest findings are reported against the manifest.
	KindManifest
)

const (
	prefixMessage     = "msg"
	prefixDeclaration = "declaration-snap-v2"
	prefixLint        = "lint-snap-v2"
)

// Classify returns the Kind of a finding from its first identifier part.
func Classify(f core.Finding) Kind {
	switch f.Part(0) {
	case prefixMessage:
		return KindMessage
	case prefixDeclaration, prefixLint:
		return KindManifest
	default:
		return KindIgnored
	}
}

// Locate resolves a finding to a manifest position. The second return value
// is false when no locator is wired for the finding.
func Locate(lines []string, f core.Finding) (core.Position, bool) {
	switch f.Part(0) {
	case prefixDeclaration:
		return locateDeclaration(lines, f)
	case prefixLint:
		return locateLint(lines, f)
	}
	return core.NotFound, false
}

func locateDeclaration(lines []string, f core.Finding) (core.Position, bool) {
	var section string
	switch f.Part(1) {
	case "plugs_connection", "plugs_installation":
		section = "plugs"
	case "slots_connection":
		section = "slots"
	default:
		return core.NotFound, false
	}
	item := f.Part(3)
	if item == "" {
		return core.NotFound, false
	}
	return LocateListItem(lines, section, item), true
}

func locateLint(lines []string, f core.Finding) (core.Position, bool) {
	switch f.Part(1) {
	case "snap_type_redflag":
		switch f.Text {
		case "(NEEDS REVIEW) type 'base' not allowed",
			"(NEEDS REVIEW) type 'os' not allowed",
			"(NEEDS REVIEW) type 'gadget' not allowed":
			return LocateKeyValue(lines, "type", `\w+`), true
		}
	case "base_interfaces":
		switch f.Text {
		case "'plugs' not allowed with base snaps":
			return LocateKeyValue(lines, "plugs", `.*?`), true
		case "'slots' not allowed with base snaps":
			return LocateKeyValue(lines, "slots", `.*?`), true
		}
	case "base_allowed":
		return LocateKeyValue(lines, "base", `\w+`), true
	case "confinement_classic":
		return LocateKeyValue(lines, "confinement", "classic"), true
	}
	return core.NotFound, false
}

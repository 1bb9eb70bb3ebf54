package core

// Position is a 0-based line/column location inside the manifest.
type Position struct {
	Line int
	Col  int
}

// NotFound is returned by the locators when nothing matched.
var NotFound = Position{Line: -1, Col: 0}

// Found reports whether the position points at a manifest line.
func (p Position) Found() bool {
	return p.Line >= 0
}

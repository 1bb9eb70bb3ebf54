package core

// Annotation is a message to surface on the CI run. Line and Col are
// 1-based; zero means unknown. An empty File means the message is not tied
// to the manifest at all.
type Annotation struct {
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
	Col       int    `json:"col,omitempty"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	FindingID string `json:"finding_id,omitempty"`
}

// NewAnnotation converts a located finding into an annotation.
func NewAnnotation(file string, pos Position, finding Finding) Annotation {
	a := Annotation{
		File:      file,
		Level:     finding.Level,
		Message:   finding.Text,
		FindingID: finding.ID,
	}
	if pos.Found() {
		a.Line = pos.Line + 1
		a.Col = pos.Col + 1
	}
	return a
}

// Located reports whether the annotation carries a line number.
func (a Annotation) Located() bool {
	return a.File != "" && a.Line > 0
}

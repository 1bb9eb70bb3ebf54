package reporters

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reaandrew/snapreview/core"
)

// WorkflowCommandReporter prints GitHub Actions workflow commands, which the
// runner turns into inline annotations on the manifest.
type WorkflowCommandReporter struct {
	Writer io.Writer
}

func NewWorkflowCommandReporter() WorkflowCommandReporter {
	return WorkflowCommandReporter{Writer: os.Stdout}
}

func (w WorkflowCommandReporter) Report(ctx context.Context, annotations []core.Annotation) error {
	for _, annotation := range annotations {
		if _, err := fmt.Fprintln(w.Writer, FormatWorkflowCommand(annotation)); err != nil {
			return fmt.Errorf("failed to write workflow command: %w", err)
		}
	}
	return nil
}

// FormatWorkflowCommand renders one annotation, e.g.
// "::error file=snap/snapcraft.yaml,line=5,col=3::message".
func FormatWorkflowCommand(a core.Annotation) string {
	var properties []string
	if a.File != "" {
		properties = append(properties, "file="+escapeProperty(a.File))
		if a.Line > 0 {
			properties = append(properties, fmt.Sprintf("line=%d", a.Line))
			if a.Col > 0 {
				properties = append(properties, fmt.Sprintf("col=%d", a.Col))
			}
		}
	}

	var b strings.Builder
	b.WriteString("::")
	b.WriteString(commandFor(a.Level))
	if len(properties) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(properties, ","))
	}
	b.WriteString("::")
	b.WriteString(escapeData(a.Message))
	return b.String()
}

func commandFor(level string) string {
	switch level {
	case core.LevelWarn:
		return "warning"
	case core.LevelInfo:
		return "notice"
	default:
		return "error"
	}
}

var (
	dataEscaper     = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	propertyEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
)

func escapeData(s string) string {
	return dataEscaper.Replace(s)
}

func escapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}

package reporters

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v50/github"
	log "github.com/sirupsen/logrus"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/utils"
)

// maxAnnotationsPerRequest is the limit the Checks API puts on a single
// create or update call.
const maxAnnotationsPerRequest = 50

// GithubChecksReporter publishes annotations as a completed check run.
type GithubChecksReporter struct {
	Api     utils.GithubApi
	Owner   string
	Repo    string
	HeadSHA string
	Name    string
	// Workspace is the checkout root absolute manifest paths are made
	// relative to, usually GITHUB_WORKSPACE.
	Workspace string
}

func (g GithubChecksReporter) Report(ctx context.Context, annotations []core.Annotation) error {
	if g.HeadSHA == "" {
		return fmt.Errorf("cannot create check run without a head commit SHA")
	}

	conclusion := "success"
	summary := "No findings need manual review."
	if len(annotations) > 0 {
		conclusion = "failure"
		summary = fmt.Sprintf("%d finding(s) need manual review.", len(annotations))
	}
	title := g.name()

	located, text := splitByFile(annotations)
	batches := batchAnnotations(g.Workspace, located)
	run, err := g.Api.CreateCheckRun(ctx, g.Owner, g.Repo, github.CreateCheckRunOptions{
		Name:       title,
		HeadSHA:    g.HeadSHA,
		Status:     github.String("completed"),
		Conclusion: github.String(conclusion),
		Output:     checkRunOutput(title, summary, text, batches[0]),
	})
	if err != nil {
		return err
	}

	for _, batch := range batches[1:] {
		err := g.Api.UpdateCheckRun(ctx, g.Owner, g.Repo, run.GetID(), github.UpdateCheckRunOptions{
			Name:   title,
			Output: checkRunOutput(title, summary, text, batch),
		})
		if err != nil {
			return err
		}
	}

	log.Infof("Created check run %d with %d annotation(s)", run.GetID(), len(annotations))
	return nil
}

func (g GithubChecksReporter) name() string {
	if g.Name == "" {
		return "snap review"
	}
	return g.Name
}

func checkRunOutput(title, summary, text string, batch []*github.CheckRunAnnotation) *github.CheckRunOutput {
	output := &github.CheckRunOutput{
		Title:       github.String(title),
		Summary:     github.String(summary),
		Annotations: batch,
	}
	if text != "" {
		output.Text = github.String(text)
	}
	return output
}

// splitByFile keeps the annotations that point at a file. The Checks API
// rejects annotations without a path, so the rest are listed in the output
// text instead.
func splitByFile(annotations []core.Annotation) ([]core.Annotation, string) {
	var located []core.Annotation
	var text strings.Builder
	for _, a := range annotations {
		if a.File != "" {
			located = append(located, a)
			continue
		}
		if a.FindingID != "" {
			fmt.Fprintf(&text, "- **%s**: %s\n", a.FindingID, a.Message)
		} else {
			fmt.Fprintf(&text, "- %s\n", a.Message)
		}
	}
	return located, text.String()
}

// batchAnnotations always returns at least one (possibly empty) batch.
func batchAnnotations(workspace string, annotations []core.Annotation) [][]*github.CheckRunAnnotation {
	batches := [][]*github.CheckRunAnnotation{{}}
	for _, a := range annotations {
		last := len(batches) - 1
		if len(batches[last]) == maxAnnotationsPerRequest {
			batches = append(batches, []*github.CheckRunAnnotation{})
			last++
		}
		batches[last] = append(batches[last], toCheckRunAnnotation(workspace, a))
	}
	return batches
}

// toCheckRunAnnotation maps an annotation onto the Checks API, which needs a
// repository relative path and a line for every entry. Annotations without a
// line are pinned to the first line of the file.
func toCheckRunAnnotation(workspace string, a core.Annotation) *github.CheckRunAnnotation {
	line := a.Line
	if line < 1 {
		line = 1
	}
	annotation := &github.CheckRunAnnotation{
		Path:            github.String(checkRunPath(workspace, a.File)),
		StartLine:       github.Int(line),
		EndLine:         github.Int(line),
		AnnotationLevel: github.String(checkRunLevel(a.Level)),
		Message:         github.String(a.Message),
	}
	if a.FindingID != "" {
		annotation.Title = github.String(a.FindingID)
	}
	if a.Col > 0 {
		annotation.StartColumn = github.Int(a.Col)
		annotation.EndColumn = github.Int(a.Col)
	}
	return annotation
}

func checkRunPath(workspace, file string) string {
	if workspace != "" && filepath.IsAbs(file) {
		if rel, err := filepath.Rel(workspace, file); err == nil && !strings.HasPrefix(rel, "..") {
			file = rel
		}
	}
	return path.Clean(filepath.ToSlash(file))
}

func checkRunLevel(level string) string {
	switch level {
	case core.LevelWarn:
		return "warning"
	case core.LevelInfo:
		return "notice"
	default:
		return "failure"
	}
}

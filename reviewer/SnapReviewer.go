// Package reviewer drives a review-tools run over a snap and turns the
// findings that need manual review into annotations on snapcraft.yaml.
package reviewer

import (
	"context"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/filters"
	"github.com/reaandrew/snapreview/locator"
	"github.com/reaandrew/snapreview/tools"
	"github.com/reaandrew/snapreview/utils"
)

// HostPreparer sets up snapd and review-tools on the machine.
type HostPreparer interface {
	EnsureSnapd(ctx context.Context) error
	EnsureAppArmor(ctx context.Context) error
	EnsureReviewTools(ctx context.Context) error
}

type SnapReviewer struct {
	SnapFile      string
	PlugsDeclFile string
	SlotsDeclFile string
	AllowClassic  bool

	// ManifestDir is searched for snapcraft.yaml. Defaults to the working
	// directory.
	ManifestDir string

	Host     HostPreparer
	Runner   core.CommandRunner
	Reporter core.Reporter
	Filter   *filters.IgnoreFilter
	Files    utils.FileChecker
}

// Summary describes the outcome of a review.
type Summary struct {
	Findings    int
	Ignored     int
	Annotations []core.Annotation
}

func NewSnapReviewer(snapFile, plugsDeclFile, slotsDeclFile string, allowClassic bool, reporter core.Reporter) *SnapReviewer {
	runner := tools.ExecRunner{}
	return &SnapReviewer{
		SnapFile:      snapFile,
		PlugsDeclFile: plugsDeclFile,
		SlotsDeclFile: slotsDeclFile,
		AllowClassic:  allowClassic,
		Host:          tools.NewInstaller(runner),
		Runner:        runner,
		Reporter:      reporter,
		Files:         utils.OsFileChecker{},
	}
}

// Validate checks that the snap and any declaration files are readable.
func (r *SnapReviewer) Validate() error {
	if !r.Files.IsReadable(r.SnapFile) {
		return fmt.Errorf("cannot read snap file \"%s\"", r.SnapFile)
	}
	if r.PlugsDeclFile != "" && !r.Files.IsReadable(r.PlugsDeclFile) {
		return fmt.Errorf("cannot read plugs declaration file \"%s\"", r.PlugsDeclFile)
	}
	if r.SlotsDeclFile != "" && !r.Files.IsReadable(r.SlotsDeclFile) {
		return fmt.Errorf("cannot read slots declaration file \"%s\"", r.SlotsDeclFile)
	}
	return nil
}

// Review installs what is needed, runs snap-review and reports the findings.
func (r *SnapReviewer) Review(ctx context.Context) (Summary, error) {
	if err := r.Host.EnsureSnapd(ctx); err != nil {
		return Summary{}, err
	}
	if err := r.Host.EnsureAppArmor(ctx); err != nil {
		return Summary{}, err
	}
	if err := r.Host.EnsureReviewTools(ctx); err != nil {
		return Summary{}, err
	}
	return r.runReviewTools(ctx)
}

func (r *SnapReviewer) runReviewTools(ctx context.Context) (Summary, error) {
	dir := r.ManifestDir
	if dir == "" {
		dir = "."
	}
	manifest, err := FindManifest(dir)
	if err != nil {
		return Summary{}, err
	}
	lines, err := ReadManifestLines(filepath.FromSlash(manifest))
	if err != nil {
		return Summary{}, err
	}

	output, err := tools.RunSnapReview(ctx, r.Runner, tools.ReviewOptions{
		SnapFile:      r.SnapFile,
		PlugsDeclFile: r.PlugsDeclFile,
		SlotsDeclFile: r.SlotsDeclFile,
		AllowClassic:  r.AllowClassic,
	})
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{}
	var findings []core.Finding
	for _, finding := range output.Findings() {
		summary.Findings++
		if pattern, ignored := r.Filter.Ignored(finding); ignored {
			log.Debugf("Ignoring %s (matches %s)", finding.ID, pattern)
			summary.Ignored++
			continue
		}
		findings = append(findings, finding)
	}

	summary.Annotations = Annotate(manifest, lines, findings)
	log.Infof("%d finding(s), %d ignored, %d need manual review", summary.Findings, summary.Ignored, len(summary.Annotations))

	if err := r.Reporter.Report(ctx, summary.Annotations); err != nil {
		return summary, fmt.Errorf("failed to report annotations: %w", err)
	}
	return summary, nil
}

// Annotate turns the error findings that need manual review into
// annotations. Findings whose position cannot be resolved are reported
// against the manifest without a line.
func Annotate(manifest string, lines []string, findings []core.Finding) []core.Annotation {
	var annotations []core.Annotation
	for _, finding := range findings {
		if finding.Level != core.LevelError || !finding.ManualReview {
			continue
		}
		switch locator.Classify(finding) {
		case locator.KindMessage:
			annotations = append(annotations, core.Annotation{
				Level:     finding.Level,
				Message:   finding.Text,
				FindingID: finding.ID,
			})
		case locator.KindManifest:
			pos, wired := locator.Locate(lines, finding)
			if !wired {
				log.Debugf("Skipping locator for %s", finding.ID)
			} else if !pos.Found() {
				log.Debugf("No manifest position for %s", finding.ID)
			}
			annotations = append(annotations, core.NewAnnotation(manifest, pos, finding))
		default:
			log.Debugf("Skipping %s", finding.ID)
		}
	}
	return annotations
}

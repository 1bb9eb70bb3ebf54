package tools

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/utils"
)

// SnapReviewCommand is the review-tools entry point used to vet a snap.
const SnapReviewCommand = "review-tools.snap-review"

// ReviewOptions are the inputs passed on to snap-review.
type ReviewOptions struct {
	SnapFile      string
	PlugsDeclFile string
	SlotsDeclFile string
	AllowClassic  bool
}

// ReviewArgs builds the snap-review command line. The snap path always comes
// last.
func ReviewArgs(opts ReviewOptions) []string {
	args := []string{"--json"}
	if opts.PlugsDeclFile != "" {
		args = append(args, "--plugs", opts.PlugsDeclFile)
	}
	if opts.SlotsDeclFile != "" {
		args = append(args, "--slots", opts.SlotsDeclFile)
	}
	if opts.AllowClassic {
		args = append(args, "--allow-classic")
	}
	return append(args, opts.SnapFile)
}

// RunSnapReview runs snap-review against the snap and decodes its JSON
// report. snap-review exits non-zero whenever it has findings, so the exit
// status is only logged; output that is not valid JSON is an error.
func RunSnapReview(ctx context.Context, runner core.CommandRunner, opts ReviewOptions) (core.ReviewOutput, error) {
	code, output, err := runner.Output(ctx, SnapReviewCommand, ReviewArgs(opts)...)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", SnapReviewCommand, err)
	}
	log.Debugf("Output: %v", output)
	if code != 0 {
		log.Infof("%s exited with status %d", SnapReviewCommand, code)
	}

	var review core.ReviewOutput
	if err := json.Unmarshal([]byte(output), &review); err != nil {
		return nil, fmt.Errorf("failed to parse %s JSON output %q: %w", SnapReviewCommand, utils.Truncate(output, 200), err)
	}
	log.Infof("Found %d review-tools checks", len(review))
	return review, nil
}

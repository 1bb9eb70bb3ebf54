package reporters

import (
	"context"

	"github.com/reaandrew/snapreview/core"
)

// MultiReporter hands the annotations to each reporter in turn and stops at
// the first failure.
type MultiReporter []core.Reporter

func (m MultiReporter) Report(ctx context.Context, annotations []core.Annotation) error {
	for _, reporter := range m {
		if err := reporter.Report(ctx, annotations); err != nil {
			return err
		}
	}
	return nil
}

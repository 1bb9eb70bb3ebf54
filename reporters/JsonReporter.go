package reporters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/reportstorage"
)

const DefaultJsonReport = "snap_review_report.json"

type ReportIdGenerator interface {
	Generate() string
}

type UuidReportGenerator struct {
}

func (u UuidReportGenerator) Generate() string {
	return uuid.New().String()
}

// JsonReport is the document written by JsonReporter.
type JsonReport struct {
	ReportId    string            `json:"report_id"`
	Annotations []core.Annotation `json:"annotations"`
}

type JsonReporter struct {
	Storage           reportstorage.FileReportStorage
	ReportIdGenerator ReportIdGenerator
}

func NewJsonReporter(storage reportstorage.FileReportStorage) JsonReporter {
	return JsonReporter{
		Storage:           storage,
		ReportIdGenerator: UuidReportGenerator{},
	}
}

func (j JsonReporter) Report(ctx context.Context, annotations []core.Annotation) error {
	report := JsonReport{
		ReportId:    j.ReportIdGenerator.Generate(),
		Annotations: annotations,
	}
	if report.Annotations == nil {
		report.Annotations = []core.Annotation{}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}

	path, err := j.Storage.Store(DefaultJsonReport, data)
	if err != nil {
		return fmt.Errorf("failed to store JSON report: %w", err)
	}
	log.Infof("JSON report generated successfully: %s", path)
	return nil
}

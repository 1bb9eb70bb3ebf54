package reporters

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/reportstorage"
)

const DefaultSarifReport = "snap_review_report.sarif"

// SARIF writing (2.1.0 minimal)
type SarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []SarifRun `json:"runs"`
}
type SarifRun struct {
	Tool    SarifTool     `json:"tool"`
	Results []SarifResult `json:"results"`
}
type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}
type SarifDriver struct {
	Name           string `json:"name"`
	Version        string `json:"version,omitempty"`
	InformationURI string `json:"informationUri,omitempty"`
}
type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SarifMessage    `json:"message"`
	Locations []SarifLocation `json:"locations,omitempty"`
}
type SarifMessage struct {
	Text string `json:"text"`
}
type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}
type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Region           *SarifRegion          `json:"region,omitempty"`
}
type SarifArtifactLocation struct {
	URI string `json:"uri"`
}
type SarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

type SarifReporter struct {
	Storage     reportstorage.FileReportStorage
	ToolVersion string
}

func (s SarifReporter) Report(ctx context.Context, annotations []core.Annotation) error {
	data, err := json.MarshalIndent(BuildSarifLog(annotations, s.ToolVersion), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal SARIF report: %w", err)
	}
	path, err := s.Storage.Store(DefaultSarifReport, data)
	if err != nil {
		return fmt.Errorf("failed to store SARIF report: %w", err)
	}
	log.Infof("SARIF report generated successfully: %s", path)
	return nil
}

func BuildSarifLog(annotations []core.Annotation, version string) SarifLog {
	run := SarifRun{
		Tool: SarifTool{Driver: SarifDriver{
			Name:           "snapreview",
			Version:        version,
			InformationURI: "https://github.com/canonical/review-tools",
		}},
		Results: []SarifResult{},
	}
	for _, a := range annotations {
		result := SarifResult{
			RuleID:  a.FindingID,
			Level:   sarifLevel(a.Level),
			Message: SarifMessage{Text: a.Message},
		}
		if a.File != "" {
			location := SarifPhysicalLocation{
				ArtifactLocation: SarifArtifactLocation{URI: filepath.ToSlash(filepath.Clean(a.File))},
			}
			if a.Located() {
				location.Region = &SarifRegion{StartLine: a.Line, StartColumn: a.Col}
			}
			result.Locations = []SarifLocation{{PhysicalLocation: location}}
		}
		run.Results = append(run.Results, result)
	}
	return SarifLog{
		Version: "2.1.0",
		Schema:  "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs:    []SarifRun{run},
	}
}

func sarifLevel(level string) string {
	switch level {
	case core.LevelWarn:
		return "warning"
	case core.LevelInfo:
		return "note"
	default:
		return "error"
	}
}

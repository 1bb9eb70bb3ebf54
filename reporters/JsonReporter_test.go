package reporters

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/reportstorage"
)

type MockReportIdGenerator struct {
	id string
}

func (m MockReportIdGenerator) Generate() string {
	return m.id
}

func TestJsonReporter_Report(t *testing.T) {
	dir := t.TempDir()
	reporter := JsonReporter{
		Storage:           reportstorage.CreateFileReportStorage("run", dir),
		ReportIdGenerator: MockReportIdGenerator{id: "101"},
	}

	err := reporter.Report(context.Background(), []core.Annotation{
		{File: "snapcraft.yaml", Line: 3, Col: 5, Level: core.LevelError, Message: "review", FindingID: "declaration-snap-v2:plugs_connection:cam:camera"},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "run_"+DefaultJsonReport))
	require.NoError(t, err)

	var report JsonReport
	require.NoError(t, json.Unmarshal(content, &report))
	assert.Equal(t, "101", report.ReportId)
	require.Len(t, report.Annotations, 1)
	assert.Equal(t, 3, report.Annotations[0].Line)
	assert.Equal(t, "declaration-snap-v2:plugs_connection:cam:camera", report.Annotations[0].FindingID)
}

func TestJsonReporter_EmptyReportHasEmptyList(t *testing.T) {
	dir := t.TempDir()
	reporter := JsonReporter{
		Storage:           reportstorage.CreateFileReportStorage("", dir),
		ReportIdGenerator: MockReportIdGenerator{id: "1"},
	}
	require.NoError(t, reporter.Report(context.Background(), nil))

	content, err := os.ReadFile(filepath.Join(dir, DefaultJsonReport))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"annotations": []`)
}

func TestUuidReportGenerator(t *testing.T) {
	generator := UuidReportGenerator{}
	first := generator.Generate()
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, generator.Generate())
}

package reportstorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreWritesArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	storage := CreateFileReportStorage("snapreview", dir)

	path, err := storage.Store("report.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "snapreview_report.json"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(content))
}

func TestPathWithoutPrefix(t *testing.T) {
	storage := FileReportStorage{}
	assert.Equal(t, "report.sarif", storage.Path("report.sarif"))
}

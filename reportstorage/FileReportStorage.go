package reportstorage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileReportStorage writes report artifacts as <OutputDir>/<ArtifactPrefix>_<name>.
type FileReportStorage struct {
	ArtifactPrefix string
	OutputDir      string
}

func CreateFileReportStorage(artifactPrefix, outputDir string) FileReportStorage {
	return FileReportStorage{
		ArtifactPrefix: artifactPrefix,
		OutputDir:      outputDir,
	}
}

func (s *FileReportStorage) setDefaultOutputDir() {
	if s.OutputDir == "" {
		s.OutputDir = "."
	}
}

// Path returns where an artifact called name is stored.
func (s FileReportStorage) Path(name string) string {
	s.setDefaultOutputDir()
	if s.ArtifactPrefix == "" {
		return filepath.Join(s.OutputDir, name)
	}
	return filepath.Join(s.OutputDir, fmt.Sprintf("%s_%s", s.ArtifactPrefix, name))
}

// Store writes data to the artifact called name and returns its path.
func (s FileReportStorage) Store(name string, data []byte) (string, error) {
	s.setDefaultOutputDir()

	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.OutputDir, err)
	}

	outputFilePath := s.Path(name)
	outputFile, err := os.Create(outputFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file %s: %w", outputFilePath, err)
	}
	defer outputFile.Close()

	if _, err = outputFile.Write(data); err != nil {
		return "", fmt.Errorf("failed to write to report file %s: %w", outputFilePath, err)
	}

	return outputFilePath, nil
}

package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

const reportFileName = "analysis.yaml"

// ReportStore persists and retrieves analysis runs so results can be
// reviewed later with `codeflash view`.
type ReportStore interface {
	Save(dir m.Path, run m.AnalysisRun) error
	Load(dir m.Path) (m.AnalysisRun, error)
}

// LocalReportStore stores runs as YAML files in a reports directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// Save writes the run to <dir>/analysis.yaml, creating the directory when
// needed.
func (rs *LocalReportStore) Save(dir m.Path, run m.AnalysisRun) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports dir %s: %w", dir, err)
	}

	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

// Load reads a previously saved run from <dir>/analysis.yaml.
func (rs *LocalReportStore) Load(dir m.Path) (m.AnalysisRun, error) {
	path := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return m.AnalysisRun{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var run m.AnalysisRun
	if err := yaml.Unmarshal(data, &run); err != nil {
		return m.AnalysisRun{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return run, nil
}

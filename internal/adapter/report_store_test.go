package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

func sampleRun() m.AnalysisRun {
	return m.AnalysisRun{
		Goal: m.GoalCost,
		Diagnostics: []m.Diagnostic{
			{
				File:       "app.py",
				Line:       1,
				RuleID:     "heavy-import",
				Issue:      "Heavy import: pandas",
				Impact:     "Increases memory footprint and cold-start time (Library is heavy)",
				Suggestion: "Consider lighter alternatives: csv (stdlib)",
				Category:   m.CategoryImport,
				Library:    "pandas",
			},
			{
				File:       "app.py",
				Line:       7,
				RuleID:     "loop-accumulation",
				Issue:      "Augmented assignment (+= operator) in loop",
				Impact:     "May create new objects each iteration if used with strings (O(n²) memory)",
				Suggestion: `If concatenating strings: use list.append() and "".join(). If adding numbers: this is fine.`,
				Category:   m.CategoryMemoryPattern,
			},
		},
		Skipped: []m.SkippedUnit{
			{Path: "broken.py", Reason: m.SkipParseFailure, Detail: "python syntax error in broken.py"},
		},
	}
}

func TestReportStoreRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewReportStore()

	require.NoError(t, store.Save(m.Path(dir), sampleRun()))

	loaded, err := store.Load(m.Path(dir))
	require.NoError(t, err)

	assert.Equal(t, sampleRun(), loaded)
}

func TestReportStoreSaveCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "reports")
	store := NewReportStore()

	require.NoError(t, store.Save(m.Path(dir), sampleRun()))

	_, err := os.Stat(filepath.Join(dir, "analysis.yaml"))
	require.NoError(t, err)
}

func TestReportStoreLoadMissingReport(t *testing.T) {
	t.Parallel()

	_, err := NewReportStore().Load(m.Path(t.TempDir()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read report")
}

func TestReportStoreExportShape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewReportStore()

	require.NoError(t, store.Save(m.Path(dir), sampleRun()))

	data, err := os.ReadFile(filepath.Join(dir, "analysis.yaml"))
	require.NoError(t, err)

	// Downstream consumers depend on these exact field names.
	for _, field := range []string{"file:", "line:", "issue:", "impact:", "suggestion:", "type:", "library: pandas"} {
		assert.Contains(t, string(data), field)
	}
}

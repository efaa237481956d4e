package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeflash-sh/codeflash/internal/domain"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

func newTestCmd(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(input))

	return cmd, out
}

func testRun() m.AnalysisRun {
	return m.AnalysisRun{
		Goal: m.GoalCost,
		Diagnostics: []m.Diagnostic{
			{File: "a.py", Line: 1, RuleID: "heavy-import", Issue: "Heavy import: pandas", Impact: "heavy", Suggestion: "use csv", Category: m.CategoryImport, Library: "pandas"},
			{File: "b.py", Line: 3, RuleID: "loop-accumulation", Issue: "Augmented assignment (+= operator) in loop", Impact: "quadratic", Suggestion: "join", Category: m.CategoryMemoryPattern},
		},
		Skipped: []m.SkippedUnit{{Path: "c.py", Reason: m.SkipParseFailure}},
	}
}

func TestSimpleUISummary(t *testing.T) {
	t.Parallel()

	cmd, out := newTestCmd("")

	require.NoError(t, NewSimpleUI(cmd).Summary(testRun()))

	output := out.String()
	assert.Contains(t, output, "a.py")
	assert.Contains(t, output, "b.py")
	assert.Contains(t, output, "TOTAL FILES 2")
	assert.Contains(t, output, "Skipped 1 file(s)")
	assert.Contains(t, output, "c.py (parse_failure)")
}

func TestSimpleUISummaryEmptyRun(t *testing.T) {
	t.Parallel()

	cmd, out := newTestCmd("")

	require.NoError(t, NewSimpleUI(cmd).Summary(m.AnalysisRun{Goal: m.GoalSpeed}))

	assert.Contains(t, out.String(), "No optimization opportunities found!")
}

func TestSimpleUIList(t *testing.T) {
	t.Parallel()

	cmd, out := newTestCmd("")

	require.NoError(t, NewSimpleUI(cmd).List(testRun()))

	output := out.String()
	assert.Contains(t, output, "Found 2 optimization opportunities (goal: cost)")
	assert.Contains(t, output, "1. a.py:1 [import_optimization]")
	assert.Contains(t, output, "Issue: Heavy import: pandas")
	assert.Contains(t, output, "2. b.py:3 [memory_pattern]")
}

func TestSimpleUIDetail(t *testing.T) {
	t.Parallel()

	cmd, out := newTestCmd("")

	require.NoError(t, NewSimpleUI(cmd).Detail(testRun()))

	output := out.String()
	assert.Contains(t, output, "Line 1: Heavy import: pandas")
	assert.Contains(t, output, "Library: pandas")
	assert.Contains(t, output, "Suggestion: use csv")
}

func TestSimpleUIConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		defaultYes bool
		expected   bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"eof takes default", "", true, true},
		{"garbage is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, _ := newTestCmd(tt.input)

			got, err := NewSimpleUI(cmd).Confirm("Apply?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSimpleUIApplyReport(t *testing.T) {
	t.Parallel()

	cmd, out := newTestCmd("")

	outcome := domain.ApplyOutcome{
		Actionable: 0,
		SkippedByCategory: map[m.Category]int{
			m.CategoryImport:        2,
			m.CategoryMemoryPattern: 1,
		},
	}

	require.NoError(t, NewSimpleUI(cmd).ApplyReport(outcome))

	output := out.String()
	assert.Contains(t, output, "Applied 0 optimizations")
	assert.Contains(t, output, "import_optimization: 2")
	assert.Contains(t, output, "memory_pattern: 1")
}

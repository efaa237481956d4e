package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

func TestApplyReportsZeroActionable(t *testing.T) {
	t.Parallel()

	workflow := newTestWorkflow(t)

	run := m.AnalysisRun{
		Goal: m.GoalCost,
		Diagnostics: []m.Diagnostic{
			{File: "a.py", Line: 1, RuleID: "heavy-import", Category: m.CategoryImport},
			{File: "a.py", Line: 4, RuleID: "eager-collection", Category: m.CategoryDataStructure},
			{File: "a.py", Line: 9, RuleID: "loop-accumulation", Category: m.CategoryMemoryPattern},
			{File: "b.py", Line: 2, RuleID: "loop-accumulation", Category: m.CategoryMemoryPattern},
		},
	}

	outcome := workflow.Apply(run)

	assert.Equal(t, 0, outcome.Actionable)
	assert.Equal(t, map[m.Category]int{
		m.CategoryImport:        1,
		m.CategoryDataStructure: 1,
		m.CategoryMemoryPattern: 2,
	}, outcome.SkippedByCategory)
}

func TestApplyEmptyRun(t *testing.T) {
	t.Parallel()

	outcome := newTestWorkflow(t).Apply(m.AnalysisRun{Goal: m.GoalSpeed})

	assert.Equal(t, 0, outcome.Actionable)
	assert.Empty(t, outcome.SkippedByCategory)
}

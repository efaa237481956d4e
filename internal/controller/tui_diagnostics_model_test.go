package controller

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

func manyDiagnostics(n int) m.AnalysisRun {
	run := m.AnalysisRun{Goal: m.GoalCost}

	for i := range n {
		run.Diagnostics = append(run.Diagnostics, m.Diagnostic{
			File:     m.Path(fmt.Sprintf("file%02d.py", i)),
			Line:     i + 1,
			RuleID:   "heavy-import",
			Issue:    fmt.Sprintf("issue %d", i),
			Category: m.CategoryImport,
		})
	}

	return run
}

func TestDiagnosticsModelPagination(t *testing.T) {
	t.Parallel()

	assert.False(t, newDiagnosticsModel(manyDiagnostics(diagnosticsPerPage)).needsPagination())
	assert.True(t, newDiagnosticsModel(manyDiagnostics(diagnosticsPerPage+1)).needsPagination())
}

func TestDiagnosticsModelCursorMovement(t *testing.T) {
	t.Parallel()

	model := newDiagnosticsModel(manyDiagnostics(25))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(diagnosticsModel)
	assert.Equal(t, 1, model.cursor)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(diagnosticsModel)
	assert.Equal(t, 0, model.cursor)

	// Cursor never moves above the first entry.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(diagnosticsModel)
	assert.Equal(t, 0, model.cursor)
}

func TestDiagnosticsModelPageFollowsCursor(t *testing.T) {
	t.Parallel()

	model := newDiagnosticsModel(manyDiagnostics(25))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = updated.(diagnosticsModel)

	assert.Equal(t, diagnosticsPerPage, model.cursor)
	assert.Equal(t, 1, model.paginator.Page)
}

func TestDiagnosticsModelQuit(t *testing.T) {
	t.Parallel()

	model := newDiagnosticsModel(manyDiagnostics(3))

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model = updated.(diagnosticsModel)

	require.NotNil(t, cmd)
	assert.True(t, model.quitting)
	assert.Empty(t, model.View())
}

func TestDiagnosticsModelDetailToggle(t *testing.T) {
	t.Parallel()

	model := newDiagnosticsModel(manyDiagnostics(3))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(diagnosticsModel)

	assert.True(t, model.showDetail)
	assert.Contains(t, model.View(), "Suggestion:")
}

func TestDiagnosticsModelViewListsCurrentPage(t *testing.T) {
	t.Parallel()

	model := newDiagnosticsModel(manyDiagnostics(12))

	view := model.View()
	assert.Contains(t, view, "file00.py")
	assert.Contains(t, view, "12 optimization opportunities")
	assert.NotContains(t, view, "file11.py")
}

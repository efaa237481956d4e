package controller

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codeflash-sh/codeflash/internal/domain"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// TUI implements UI using Bubble Tea for interactive browsing of
// diagnostics. Non-interactive output (summary, confirmation, apply report)
// is delegated to the plain UI so redirected streams stay clean.
type TUI struct {
	cmd   *cobra.Command
	plain *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, plain: NewSimpleUI(cmd)}
}

// Summary prints the per-file table.
func (t *TUI) Summary(run m.AnalysisRun) error {
	return t.plain.Summary(run)
}

// List opens the interactive diagnostics browser. Short result lists are
// printed directly without entering the alternate screen.
func (t *TUI) List(run m.AnalysisRun) error {
	if run.Empty() {
		return nil
	}

	model := newDiagnosticsModel(run)

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.cmd.OutOrStdout(), model.listView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.cmd.OutOrStdout()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// Detail prints the long single-file form.
func (t *TUI) Detail(run m.AnalysisRun) error {
	return t.plain.Detail(run)
}

// Confirm asks a yes/no question on the command's input stream.
func (t *TUI) Confirm(prompt string, defaultYes bool) (bool, error) {
	return t.plain.Confirm(prompt, defaultYes)
}

// ApplyReport prints the outcome of the apply step.
func (t *TUI) ApplyReport(outcome domain.ApplyOutcome) error {
	return t.plain.ApplyReport(outcome)
}

// Package controller provides output adapters for displaying analysis
// results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeflash-sh/codeflash/internal/domain"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// UI renders analysis results. Implementations can use different output
// methods (plain text, interactive TUI).
type UI interface {
	// Summary prints per-file diagnostic counts and the skipped-unit list.
	Summary(run m.AnalysisRun) error

	// List prints every diagnostic with its issue, impact and suggestion.
	List(run m.AnalysisRun) error

	// Detail prints the long single-file form used by `codeflash analyze`.
	Detail(run m.AnalysisRun) error

	// Confirm asks the user a yes/no question.
	Confirm(prompt string, defaultYes bool) (bool, error)

	// ApplyReport prints the outcome of the apply step.
	ApplyReport(outcome domain.ApplyOutcome) error
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns the interactive Bubble Tea UI, otherwise the plain one.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Redirected
// or piped output is not a TTY.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

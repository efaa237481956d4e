package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/codeflash-sh/codeflash/internal/domain"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// SimpleUI implements UI with plain text on the cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Summary prints a per-file table of diagnostic counts plus skip outcomes.
func (s *SimpleUI) Summary(run m.AnalysisRun) error {
	if run.Empty() && len(run.Skipped) == 0 {
		s.printf("No optimization opportunities found!\n")
		return nil
	}

	counts := run.CountByFile()

	paths := make([]string, 0, len(counts))
	for path := range counts {
		paths = append(paths, string(path))
	}

	sort.Strings(paths)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Findings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, path := range paths {
		table.Append([]string{path, fmt.Sprintf("%d", counts[m.Path(path)])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		fmt.Sprintf("%d", len(run.Diagnostics)),
	})

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	s.printSkipped(run)

	return nil
}

// List prints every diagnostic in run order, numbered.
func (s *SimpleUI) List(run m.AnalysisRun) error {
	if run.Empty() {
		return nil
	}

	s.printf("Found %d optimization opportunities (goal: %s):\n", len(run.Diagnostics), run.Goal)

	for i, d := range run.Diagnostics {
		s.printf("\n%d. %s:%d [%s]\n", i+1, d.File, d.Line, d.Category)
		s.printf("   Issue: %s\n", d.Issue)
		s.printf("   Impact: %s\n", d.Impact)
		s.printf("   Suggestion: %s\n", d.Suggestion)
	}

	return nil
}

// Detail prints the long single-file form used by `codeflash analyze`.
func (s *SimpleUI) Detail(run m.AnalysisRun) error {
	if run.Empty() {
		s.printf("No issues found!\n")
		s.printSkipped(run)

		return nil
	}

	s.printf("Analysis Results:\n\n")

	for _, d := range run.Diagnostics {
		s.printf("Line %d: %s\n", d.Line, d.Issue)
		s.printf("  Impact: %s\n", d.Impact)

		if d.Library != "" {
			s.printf("  Library: %s\n", d.Library)
		}

		s.printf("  Suggestion: %s\n\n", d.Suggestion)
	}

	s.printSkipped(run)

	return nil
}

// Confirm asks a yes/no question on the command's input stream. Empty input
// selects the default.
func (s *SimpleUI) Confirm(prompt string, defaultYes bool) (bool, error) {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}

	s.printf("%s %s: ", prompt, hint)

	reader := bufio.NewReader(s.cmd.InOrStdin())

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultYes, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	case "":
		return defaultYes, nil
	default:
		return false, nil
	}
}

// ApplyReport prints what the apply step did and, more importantly, what it
// declined to touch.
func (s *SimpleUI) ApplyReport(outcome domain.ApplyOutcome) error {
	s.printf("Applied %d optimizations\n", outcome.Actionable)

	if len(outcome.SkippedByCategory) == 0 {
		return nil
	}

	categories := make([]string, 0, len(outcome.SkippedByCategory))
	for category := range outcome.SkippedByCategory {
		categories = append(categories, string(category))
	}

	sort.Strings(categories)

	s.printf("Not auto-fixable without semantic analysis:\n")

	for _, category := range categories {
		s.printf("  %s: %d\n", category, outcome.SkippedByCategory[m.Category(category)])
	}

	return nil
}

func (s *SimpleUI) printSkipped(run m.AnalysisRun) {
	if len(run.Skipped) == 0 {
		return
	}

	s.printf("Skipped %d file(s):\n", len(run.Skipped))

	for _, skip := range run.Skipped {
		s.printf("  %s (%s)\n", skip.Path, skip.Reason)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

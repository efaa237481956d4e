package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

const diagnosticsPerPage = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// diagnosticsModel is the Bubble Tea model backing the interactive
// diagnostics browser.
type diagnosticsModel struct {
	run        m.AnalysisRun
	paginator  paginator.Model
	cursor     int
	showDetail bool
	quitting   bool
}

func newDiagnosticsModel(run m.AnalysisRun) diagnosticsModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = diagnosticsPerPage
	p.SetTotalPages(len(run.Diagnostics))

	return diagnosticsModel{run: run, paginator: p}
}

func (d diagnosticsModel) needsPagination() bool {
	return len(d.run.Diagnostics) > diagnosticsPerPage
}

// Init implements tea.Model.
func (d diagnosticsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d diagnosticsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		d.quitting = true
		return d, tea.Quit
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.run.Diagnostics)-1 {
			d.cursor++
		}
	case "left", "h":
		if d.cursor >= diagnosticsPerPage {
			d.cursor -= diagnosticsPerPage
		} else {
			d.cursor = 0
		}
	case "right", "l":
		if d.cursor+diagnosticsPerPage < len(d.run.Diagnostics) {
			d.cursor += diagnosticsPerPage
		} else {
			d.cursor = len(d.run.Diagnostics) - 1
		}
	case "enter":
		d.showDetail = !d.showDetail
	}

	d.paginator.Page = d.cursor / diagnosticsPerPage

	return d, nil
}

// View implements tea.Model.
func (d diagnosticsModel) View() string {
	if d.quitting {
		return ""
	}

	return d.listView()
}

func (d diagnosticsModel) listView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf(
		"%d optimization opportunities (goal: %s)", len(d.run.Diagnostics), d.run.Goal)))

	start, end := d.paginator.GetSliceBounds(len(d.run.Diagnostics))

	for i, diag := range d.run.Diagnostics[start:end] {
		index := start + i
		line := fmt.Sprintf("%s:%d  %s %s",
			diag.File, diag.Line, diag.Issue, categoryStyle.Render("["+string(diag.Category)+"]"))

		if index == d.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}

		b.WriteString("\n")
	}

	if d.showDetail && d.cursor < len(d.run.Diagnostics) {
		diag := d.run.Diagnostics[d.cursor]
		detail := fmt.Sprintf("Issue: %s\nImpact: %s\nSuggestion: %s", diag.Issue, diag.Impact, diag.Suggestion)

		if diag.Library != "" {
			detail += fmt.Sprintf("\nLibrary: %s", diag.Library)
		}

		fmt.Fprintf(&b, "\n%s\n", detailStyle.Render(detail))
	}

	if d.needsPagination() {
		fmt.Fprintf(&b, "\n%s\n", d.paginator.View())
	}

	b.WriteString(helpStyle.Render("\n↑/↓ select · ←/→ page · enter details · q quit\n"))

	return b.String()
}

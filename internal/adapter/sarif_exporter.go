package adapter

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

const (
	toolName = "codeflash"
	toolURI  = "https://github.com/codeflash-sh/codeflash"
)

// SarifExporter renders an analysis run as a SARIF 2.1.0 report so results
// can feed code-scanning dashboards and CI annotations.
type SarifExporter struct{}

// NewSarifExporter constructs a SarifExporter.
func NewSarifExporter() *SarifExporter {
	return &SarifExporter{}
}

// Write serializes the run to w. One SARIF rule is emitted per distinct
// detection rule, one result per diagnostic.
func (e *SarifExporter) Write(w io.Writer, run m.AnalysisRun) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create sarif report: %w", err)
	}

	sarifRun := sarif.NewRunWithInformationURI(toolName, toolURI)

	registered := make(map[string]struct{})

	for _, d := range run.Diagnostics {
		if _, ok := registered[d.RuleID]; !ok {
			registered[d.RuleID] = struct{}{}

			sarifRun.AddRule(d.RuleID).
				WithDescription(d.Issue).
				WithTextHelp(fmt.Sprintf("Category: %s", d.Category))
		}

		message := fmt.Sprintf("%s. %s. %s", d.Issue, d.Impact, d.Suggestion)

		location := sarif.NewLocationWithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewSimpleArtifactLocation(string(d.File))).
				WithRegion(sarif.NewSimpleRegion(d.Line, d.Line)),
		)

		sarifRun.CreateResultForRule(d.RuleID).
			WithLevel("note").
			WithMessage(sarif.NewTextMessage(message)).
			WithLocations([]*sarif.Location{location})
	}

	report.AddRun(sarifRun)

	return report.PrettyWrite(w)
}

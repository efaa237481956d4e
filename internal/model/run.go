package model

// AnalysisRun is the ordered, deduplicated diagnostic output of one
// invocation. Runs are independent: nothing is shared across invocations
// beyond the read-only knowledge table.
type AnalysisRun struct {
	Goal        Goal          `yaml:"goal"`
	Diagnostics []Diagnostic  `yaml:"diagnostics"`
	Skipped     []SkippedUnit `yaml:"skipped,omitempty"`
}

// Empty reports whether the run produced no diagnostics. An empty run is a
// success outcome, not an error.
func (r AnalysisRun) Empty() bool {
	return len(r.Diagnostics) == 0
}

// CountByCategory tallies diagnostics per category for summary output.
func (r AnalysisRun) CountByCategory() map[Category]int {
	counts := make(map[Category]int, len(r.Diagnostics))

	for _, d := range r.Diagnostics {
		counts[d.Category]++
	}

	return counts
}

// CountByFile tallies diagnostics per source unit for summary output.
func (r AnalysisRun) CountByFile() map[Path]int {
	counts := make(map[Path]int, len(r.Diagnostics))

	for _, d := range r.Diagnostics {
		counts[d.File]++
	}

	return counts
}

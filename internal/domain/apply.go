package domain

import (
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// ApplyOutcome reports what the apply step could and could not act on.
type ApplyOutcome struct {
	// Actionable counts diagnostics whose category is safe to rewrite
	// automatically.
	Actionable int
	// SkippedByCategory counts the diagnostics left untouched, per
	// category.
	SkippedByCategory map[m.Category]int
}

// Apply partitions the run's diagnostics by auto-fix capability. No current
// category is auto-fixable (a semantics-preserving rewrite would need full
// type and usage analysis), so today this reports zero actionable
// diagnostics and leaves every source file untouched.
func (w *workflow) Apply(run m.AnalysisRun) ApplyOutcome {
	outcome := ApplyOutcome{SkippedByCategory: make(map[m.Category]int)}

	for _, d := range run.Diagnostics {
		if d.Category.CanAutoFix() {
			outcome.Actionable++
			continue
		}

		outcome.SkippedByCategory[d.Category]++
	}

	return outcome
}

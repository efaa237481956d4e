package domain

import (
	"sort"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

// Aggregator merges per-unit diagnostic sequences into one stable run. It is
// the only point where results from independent units meet, so it is the
// single serialization point when units are analyzed in parallel.
type Aggregator struct{}

// NewAggregator constructs an Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate concatenates the per-unit batches, orders diagnostics by
// (file, line, rule) and drops duplicates by that same identity, so a
// retried unit never doubles its output. Skipped units are ordered by path.
func (a *Aggregator) Aggregate(goal m.Goal, batches [][]m.Diagnostic, skipped []m.SkippedUnit) m.AnalysisRun {
	var all []m.Diagnostic

	for _, batch := range batches {
		all = append(all, batch...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Key().Less(all[j].Key())
	})

	seen := make(map[m.Key]struct{}, len(all))
	diags := make([]m.Diagnostic, 0, len(all))

	for _, d := range all {
		key := d.Key()
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		diags = append(diags, d)
	}

	ordered := make([]m.SkippedUnit, len(skipped))
	copy(ordered, skipped)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Path < ordered[j].Path })

	return m.AnalysisRun{Goal: goal, Diagnostics: diags, Skipped: ordered}
}

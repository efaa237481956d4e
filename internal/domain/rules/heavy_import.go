// Package rules implements the built-in inefficiency detection rules.
//
// Every rule is a stateless predicate+builder pair: Matches reports whether
// a node exhibits the rule's pattern, Build produces the diagnostics for a
// matched node. Rules never mutate the tree and the same node always yields
// the same output, so a run is reproducible byte for byte.
package rules

import (
	"fmt"
	"strings"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

// HeavyImportRule flags imports of libraries listed in the knowledge table.
// A dotted import path is reduced to its first segment before lookup, so
// `pandas.io.parsers` resolves to `pandas`.
type HeavyImportRule struct {
	table m.KnowledgeTable
}

// NewHeavyImportRule constructs the rule around the injected table.
func NewHeavyImportRule(table m.KnowledgeTable) *HeavyImportRule {
	return &HeavyImportRule{table: table}
}

// ID returns the rule identifier.
func (r *HeavyImportRule) ID() string { return "heavy-import" }

// Category returns the diagnostic category the rule emits.
func (r *HeavyImportRule) Category() m.Category { return m.CategoryImport }

// Goals returns the optimization goals the rule serves.
func (r *HeavyImportRule) Goals() []m.Goal { return []m.Goal{m.GoalCost} }

// Matches reports whether the node imports at least one known heavy library.
func (r *HeavyImportRule) Matches(node *m.SyntaxNode) bool {
	if node.Kind != m.KindImport {
		return false
	}

	for _, module := range node.Modules {
		if _, _, ok := r.table.Lookup(module); ok {
			return true
		}
	}

	return false
}

// Build emits one diagnostic per heavy module named by the import statement.
func (r *HeavyImportRule) Build(node *m.SyntaxNode, unit m.SourceUnit) []m.Diagnostic {
	var diags []m.Diagnostic

	for _, module := range node.Modules {
		base, info, ok := r.table.Lookup(module)
		if !ok {
			continue
		}

		diags = append(diags, m.Diagnostic{
			File:       unit.Path,
			Line:       node.Line,
			RuleID:     r.ID(),
			Issue:      fmt.Sprintf("Heavy import: %s", module),
			Impact:     fmt.Sprintf("Increases memory footprint and cold-start time (Library is %s)", info.Weight),
			Suggestion: fmt.Sprintf("Consider lighter alternatives: %s", strings.Join(info.Alternatives, ", ")),
			Category:   r.Category(),
			Library:    base,
		})
	}

	return diags
}

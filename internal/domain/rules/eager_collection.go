package rules

import (
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// EagerCollectionRule flags list comprehensions, which materialize the whole
// collection up front. It applies to both the memory and cost goals: the
// O(n) space cost matters either way.
type EagerCollectionRule struct{}

// NewEagerCollectionRule constructs the rule.
func NewEagerCollectionRule() *EagerCollectionRule {
	return &EagerCollectionRule{}
}

// ID returns the rule identifier.
func (r *EagerCollectionRule) ID() string { return "eager-collection" }

// Category returns the diagnostic category the rule emits.
func (r *EagerCollectionRule) Category() m.Category { return m.CategoryDataStructure }

// Goals returns the optimization goals the rule serves.
func (r *EagerCollectionRule) Goals() []m.Goal { return []m.Goal{m.GoalCost, m.GoalMemory} }

// Matches reports whether the node is an eagerly materialized comprehension.
func (r *EagerCollectionRule) Matches(node *m.SyntaxNode) bool {
	return node.Kind == m.KindComprehension
}

// Build emits the generator-expression suggestion for the comprehension.
func (r *EagerCollectionRule) Build(node *m.SyntaxNode, unit m.SourceUnit) []m.Diagnostic {
	return []m.Diagnostic{{
		File:       unit.Path,
		Line:       node.Line,
		RuleID:     r.ID(),
		Issue:      "List comprehension could be a generator",
		Impact:     "Stores entire list in memory (O(n) space)",
		Suggestion: "Use generator expression () instead of [] if only iterating once",
		Category:   r.Category(),
	}}
}

package rules

import (
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// LoopAccumulationRule flags additive augmented assignments (`x += y`)
// inside loop bodies. Without type inference the rule cannot tell numeric
// accumulation from sequence concatenation, so it flags every additive
// augmented assignment in a loop and phrases the suggestion conditionally.
// This over-approximation is deliberate.
type LoopAccumulationRule struct{}

// NewLoopAccumulationRule constructs the rule.
func NewLoopAccumulationRule() *LoopAccumulationRule {
	return &LoopAccumulationRule{}
}

// ID returns the rule identifier.
func (r *LoopAccumulationRule) ID() string { return "loop-accumulation" }

// Category returns the diagnostic category the rule emits.
func (r *LoopAccumulationRule) Category() m.Category { return m.CategoryMemoryPattern }

// Goals returns the optimization goals the rule serves.
func (r *LoopAccumulationRule) Goals() []m.Goal { return []m.Goal{m.GoalCost, m.GoalMemory} }

// Matches reports whether the node is a `+=` assignment inside a loop.
func (r *LoopAccumulationRule) Matches(node *m.SyntaxNode) bool {
	return node.Kind == m.KindAugAssign && node.Operator == "+=" && node.InsideLoop
}

// Build emits the potential O(n²) warning for the assignment.
func (r *LoopAccumulationRule) Build(node *m.SyntaxNode, unit m.SourceUnit) []m.Diagnostic {
	return []m.Diagnostic{{
		File:       unit.Path,
		Line:       node.Line,
		RuleID:     r.ID(),
		Issue:      "Augmented assignment (+= operator) in loop",
		Impact:     "May create new objects each iteration if used with strings (O(n²) memory)",
		Suggestion: `If concatenating strings: use list.append() and "".join(). If adding numbers: this is fine.`,
		Category:   r.Category(),
	}}
}

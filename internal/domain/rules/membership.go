package rules

import (
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// MembershipRule flags containment tests (`x in y`). The engine cannot
// determine the runtime type of `y`, so every syntactic membership test is
// flagged and the suggestion stays advisory.
type MembershipRule struct{}

// NewMembershipRule constructs the rule.
func NewMembershipRule() *MembershipRule {
	return &MembershipRule{}
}

// ID returns the rule identifier.
func (r *MembershipRule) ID() string { return "membership-test" }

// Category returns the diagnostic category the rule emits.
func (r *MembershipRule) Category() m.Category { return m.CategorySpeed }

// Goals returns the optimization goals the rule serves.
func (r *MembershipRule) Goals() []m.Goal { return []m.Goal{m.GoalSpeed} }

// Matches reports whether the node is a comparison containing a bare `in`.
func (r *MembershipRule) Matches(node *m.SyntaxNode) bool {
	return node.Kind == m.KindComparison && node.Membership
}

// Build emits the set-conversion suggestion for the containment test.
func (r *MembershipRule) Build(node *m.SyntaxNode, unit m.SourceUnit) []m.Diagnostic {
	return []m.Diagnostic{{
		File:       unit.Path,
		Line:       node.Line,
		RuleID:     r.ID(),
		Issue:      "List membership test (O(n) complexity)",
		Impact:     "Slower lookups for large lists",
		Suggestion: "Convert to set for O(1) lookup if checking membership frequently",
		Category:   r.Category(),
	}}
}

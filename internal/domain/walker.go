package domain

import (
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// Walker runs every applicable rule at every node of a parsed unit.
type Walker struct{}

// NewWalker constructs a Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk performs a pre-order, document-order traversal of the unit's tree
// and returns the diagnostics produced by the provided rules. Traversal
// order is deterministic, so the output sequence is stable across runs for
// identical input. Rules are independent: a node matching several rules
// produces one diagnostic set per rule, none suppressing another.
func (w *Walker) Walk(unit m.SourceUnit, ruleSet []Rule) []m.Diagnostic {
	if unit.Tree == nil || unit.Tree.Root == nil {
		return nil
	}

	var diags []m.Diagnostic

	w.visit(unit, unit.Tree.Root, ruleSet, &diags)

	return diags
}

func (w *Walker) visit(unit m.SourceUnit, node *m.SyntaxNode, ruleSet []Rule, out *[]m.Diagnostic) {
	for _, rule := range ruleSet {
		if rule.Matches(node) {
			*out = append(*out, rule.Build(node, unit)...)
		}
	}

	for _, child := range node.Children {
		w.visit(unit, child, ruleSet, out)
	}
}

// Package domain contains the core analysis workflow: the rule registry,
// the tree walker, the diagnostic aggregator and their orchestration.
package domain

import (
	"github.com/codeflash-sh/codeflash/internal/domain/rules"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// Rule recognizes one inefficiency pattern. Implementations are stateless
// across nodes; they may hold static configuration such as the knowledge
// table. A rule must never mutate the tree, and identical input must always
// yield identical output.
type Rule interface {
	// ID is the stable rule identifier used in diagnostic identity.
	ID() string

	// Category tags the diagnostics the rule produces.
	Category() m.Category

	// Goals lists the optimization goals the rule serves. A rule is active
	// for a run when its goal set contains the selected goal.
	Goals() []m.Goal

	// Matches reports whether the node exhibits the rule's pattern.
	Matches(node *m.SyntaxNode) bool

	// Build produces the diagnostics for a matched node. The node is a
	// borrowed reference owned by the unit's tree.
	Build(node *m.SyntaxNode, unit m.SourceUnit) []m.Diagnostic
}

// Registry is the ordered, immutable set of detection rules. It is the
// single extension point of the engine: registering a rule here is all that
// is needed for the walker to apply it.
type Registry struct {
	rules []Rule
}

// NewRegistry builds the default registry. The knowledge table is injected
// explicitly so tests can substitute alternate library data.
func NewRegistry(table m.KnowledgeTable) *Registry {
	return &Registry{rules: []Rule{
		rules.NewHeavyImportRule(table),
		rules.NewEagerCollectionRule(),
		rules.NewLoopAccumulationRule(),
		rules.NewMembershipRule(),
	}}
}

// Rules returns every registered rule in registration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)

	return out
}

// ForGoal returns the rules active for the given goal, preserving
// registration order. The filter is pure; the registry is never mutated.
func (r *Registry) ForGoal(goal m.Goal) []Rule {
	var out []Rule

	for _, rule := range r.rules {
		for _, g := range rule.Goals() {
			if g == goal {
				out = append(out, rule)
				break
			}
		}
	}

	return out
}

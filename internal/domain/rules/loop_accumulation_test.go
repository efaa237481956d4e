package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

func TestLoopAccumulationRuleMatches(t *testing.T) {
	t.Parallel()

	rule := NewLoopAccumulationRule()

	tests := []struct {
		name    string
		node    *m.SyntaxNode
		matches bool
	}{
		{"additive in loop", &m.SyntaxNode{Kind: m.KindAugAssign, Operator: "+=", InsideLoop: true}, true},
		{"additive outside loop", &m.SyntaxNode{Kind: m.KindAugAssign, Operator: "+="}, false},
		{"subtractive in loop", &m.SyntaxNode{Kind: m.KindAugAssign, Operator: "-=", InsideLoop: true}, false},
		{"wrong kind", &m.SyntaxNode{Kind: m.KindComparison, Operator: "+=", InsideLoop: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.matches, rule.Matches(tt.node))
		})
	}
}

func TestLoopAccumulationRuleBuildPhrasesSuggestionConditionally(t *testing.T) {
	t.Parallel()

	rule := NewLoopAccumulationRule()
	node := &m.SyntaxNode{Kind: m.KindAugAssign, Operator: "+=", InsideLoop: true, Line: 8}

	diags := rule.Build(node, m.SourceUnit{Path: "app.py"})
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, m.CategoryMemoryPattern, d.Category)
	assert.Equal(t, 8, d.Line)
	// The rule cannot tell numeric accumulation from concatenation, so the
	// suggestion covers both cases.
	assert.Contains(t, d.Suggestion, "If concatenating strings")
	assert.Contains(t, d.Suggestion, "If adding numbers: this is fine")
	assert.Contains(t, d.Impact, "O(n²)")
}

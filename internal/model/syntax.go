// Package model defines the data structures for optimization analysis.
package model

// NodeKind classifies syntax nodes into the closed set of shapes the
// detection rules understand. Grammar-specific node types are reduced to a
// kind at parse time so rules never depend on parser internals.
type NodeKind int

// Available NodeKind values.
const (
	// KindOther covers every node no rule is interested in. The walker still
	// descends through these to reach nested constructs.
	KindOther NodeKind = iota
	// KindImport represents both `import x` and `from x import y` statements.
	KindImport
	// KindComprehension represents a list comprehension, the eagerly
	// materialized collection form.
	KindComprehension
	// KindLoop represents `for` and `while` statements.
	KindLoop
	// KindAugAssign represents augmented assignments such as `x += y`.
	KindAugAssign
	// KindComparison represents comparison chains, including membership
	// tests (`x in y`).
	KindComparison
)

func (k NodeKind) String() string {
	switch k {
	case KindImport:
		return "import"
	case KindComprehension:
		return "comprehension"
	case KindLoop:
		return "loop"
	case KindAugAssign:
		return "augmented-assignment"
	case KindComparison:
		return "comparison"
	default:
		return "other"
	}
}

// SyntaxNode is one node of a parsed source unit. Nodes are owned by their
// tree and handed to rules as read-only references.
type SyntaxNode struct {
	Kind NodeKind

	// Line is 1-based, matching editor and diagnostic conventions.
	Line int
	// Column is the 0-based column reported by the parser.
	Column int

	// Modules holds the dotted module paths named by an import statement.
	// Only set for KindImport.
	Modules []string

	// Operator is the augmented-assignment operator token, e.g. "+=".
	// Only set for KindAugAssign.
	Operator string

	// Membership is true when a comparison contains a bare `in` test.
	// Only set for KindComparison.
	Membership bool

	// InsideLoop is true for nodes lexically contained in a loop statement.
	InsideLoop bool

	// Children are in source order, which gives the walker its stable
	// document-order traversal.
	Children []*SyntaxNode
}

// SyntaxTree is the parsed form of one source unit. It is built once by the
// parser boundary and discarded after traversal.
type SyntaxTree struct {
	Root *SyntaxNode
}

package adapter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

// ErrParse marks source the Python grammar could not parse. Callers turn it
// into a per-unit skip rather than a run failure.
var ErrParse = errors.New("python syntax error")

// PythonFileAdapter encapsulates Python-specific parsing so the domain layer
// can focus on detection rules while delegating grammar details to an
// infrastructure component.
type PythonFileAdapter interface {
	// Parse builds the analyzer's syntax tree for the provided file
	// contents. The returned tree is independent of parser internals and of
	// the adapter's lifetime.
	Parse(ctx context.Context, path m.Path, src []byte) (*m.SyntaxTree, error)
}

// TreeSitterAdapter is the concrete PythonFileAdapter backed by the
// tree-sitter Python grammar.
type TreeSitterAdapter struct{}

// NewTreeSitterAdapter constructs a TreeSitterAdapter.
func NewTreeSitterAdapter() *TreeSitterAdapter {
	return &TreeSitterAdapter{}
}

// Parse builds a syntax tree for the provided filename/source pair. Source
// with syntax errors yields ErrParse; tree-sitter itself is error-tolerant,
// but a partially parsed unit would produce misleading diagnostics.
func (a *TreeSitterAdapter) Parse(ctx context.Context, path m.Path, src []byte) (*m.SyntaxTree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, fmt.Errorf("%w in %s", ErrParse, path)
	}

	return &m.SyntaxTree{Root: convertNode(root, src, false)}, nil
}

// convertNode maps a tree-sitter node to the closed NodeKind variant the
// rules understand. insideLoop propagates down so augmented assignments know
// their lexical context without re-walking ancestors.
func convertNode(n *sitter.Node, src []byte, insideLoop bool) *m.SyntaxNode {
	node := &m.SyntaxNode{
		Kind:       kindOf(n),
		Line:       int(n.StartPoint().Row) + 1,
		Column:     int(n.StartPoint().Column),
		InsideLoop: insideLoop,
	}

	switch node.Kind {
	case m.KindImport:
		node.Modules = importedModules(n, src)
	case m.KindAugAssign:
		if op := n.ChildByFieldName("operator"); op != nil {
			node.Operator = op.Type()
		}
	case m.KindComparison:
		node.Membership = hasMembershipOp(n)
	}

	childInsideLoop := insideLoop || node.Kind == m.KindLoop

	for i := 0; i < int(n.NamedChildCount()); i++ {
		node.Children = append(node.Children, convertNode(n.NamedChild(i), src, childInsideLoop))
	}

	return node
}

func kindOf(n *sitter.Node) m.NodeKind {
	switch n.Type() {
	case "import_statement", "import_from_statement":
		return m.KindImport
	case "list_comprehension":
		return m.KindComprehension
	case "for_statement", "while_statement":
		return m.KindLoop
	case "augmented_assignment":
		return m.KindAugAssign
	case "comparison_operator":
		return m.KindComparison
	default:
		return m.KindOther
	}
}

// importedModules extracts the dotted module paths named by an import
// statement. Relative imports (`from . import x`) name no module and yield
// nothing.
func importedModules(n *sitter.Node, src []byte) []string {
	var modules []string

	switch n.Type() {
	case "import_statement":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)

			switch child.Type() {
			case "dotted_name":
				modules = append(modules, child.Content(src))
			case "aliased_import":
				if name := child.ChildByFieldName("name"); name != nil {
					modules = append(modules, name.Content(src))
				}
			}
		}
	case "import_from_statement":
		if mod := n.ChildByFieldName("module_name"); mod != nil && mod.Type() == "dotted_name" {
			modules = append(modules, mod.Content(src))
		}
	}

	return modules
}

// hasMembershipOp reports whether the comparison contains a bare `in`.
// `not in` is a distinct operator and is not treated as a membership test.
func hasMembershipOp(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() != "in" {
			continue
		}

		if i > 0 && n.Child(i-1).Type() == "not" {
			continue
		}

		return true
	}

	return false
}

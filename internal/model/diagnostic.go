package model

// Category tags a diagnostic with the kind of inefficiency it reports.
type Category string

// Available Category values.
const (
	// CategoryImport marks heavy third-party imports.
	CategoryImport Category = "import_optimization"
	// CategoryDataStructure marks eagerly materialized collections.
	CategoryDataStructure Category = "data_structure"
	// CategoryMemoryPattern marks allocation patterns that may degrade to
	// quadratic behavior.
	CategoryMemoryPattern Category = "memory_pattern"
	// CategorySpeed marks lookup patterns with avoidable linear cost.
	CategorySpeed Category = "speed"
)

// CanAutoFix reports whether diagnostics in this category are safe to
// rewrite automatically. No current category is: a semantics-preserving
// rewrite would require full type and usage analysis, so the apply step
// counts instead of mutating source.
func (c Category) CanAutoFix() bool {
	return false
}

// Diagnostic is one reported optimization opportunity. Diagnostics are
// immutable once built.
type Diagnostic struct {
	File       Path     `yaml:"file"`
	Line       int      `yaml:"line"`
	RuleID     string   `yaml:"rule"`
	Issue      string   `yaml:"issue"`
	Impact     string   `yaml:"impact"`
	Suggestion string   `yaml:"suggestion"`
	Category   Category `yaml:"type"`
	// Library names the resolved top-level module. Import diagnostics only.
	Library string `yaml:"library,omitempty"`
}

// Key identifies a diagnostic for deduplication and ordering.
type Key struct {
	File   Path
	Line   int
	RuleID string
}

// Key returns the diagnostic's identity.
func (d Diagnostic) Key() Key {
	return Key{File: d.File, Line: d.Line, RuleID: d.RuleID}
}

// Less orders keys by (file, line, rule), the stable presentation order.
func (k Key) Less(other Key) bool {
	if k.File != other.File {
		return k.File < other.File
	}

	if k.Line != other.Line {
		return k.Line < other.Line
	}

	return k.RuleID < other.RuleID
}

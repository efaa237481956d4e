package model

import (
	"fmt"
	"strings"
)

// LibraryInfo describes one heavy library and its lighter alternatives.
type LibraryInfo struct {
	Weight       string            `toml:"weight"`
	Alternatives []string          `toml:"alternatives"`
	UseCases     map[string]string `toml:"use_cases,omitempty"`
}

// KnowledgeTable is the static heavy-library registry consulted by the
// import rule. It is initialized once at startup, injected explicitly where
// needed, and never mutated afterwards.
type KnowledgeTable struct {
	Libraries map[string]LibraryInfo `toml:"libraries"`
}

// Validate rejects malformed tables. Keys must be canonical top-level module
// names: lookups reduce dotted imports to their first segment, so a dotted
// key could never match.
func (t KnowledgeTable) Validate() error {
	for name := range t.Libraries {
		if name == "" {
			return fmt.Errorf("knowledge table contains an empty library name")
		}

		if strings.Contains(name, ".") {
			return fmt.Errorf("knowledge table key %q must be a top-level module name, not a dotted path", name)
		}
	}

	return nil
}

// Lookup reduces module to its first dot-separated segment and returns the
// matching entry, if any.
func (t KnowledgeTable) Lookup(module string) (string, LibraryInfo, bool) {
	base, _, _ := strings.Cut(module, ".")

	info, ok := t.Libraries[base]
	if !ok {
		return "", LibraryInfo{}, false
	}

	return base, info, true
}

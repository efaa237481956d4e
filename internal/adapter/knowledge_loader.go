package adapter

import (
	"fmt"

	"github.com/BurntSushi/toml"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

// DefaultKnowledgeTable returns the built-in heavy-library registry. The
// table is constructed fresh per call so no caller can mutate shared state.
func DefaultKnowledgeTable() m.KnowledgeTable {
	return m.KnowledgeTable{
		Libraries: map[string]m.LibraryInfo{
			"pandas": {
				Weight:       "heavy",
				Alternatives: []string{"csv (stdlib)", "polars (lighter & faster)"},
				UseCases: map[string]string{
					"read_csv":  "For simple CSV reading, use csv.DictReader from stdlib",
					"DataFrame": "For large datasets, consider polars or Apache Arrow",
				},
			},
			"numpy": {
				Weight:       "medium",
				Alternatives: []string{"array (stdlib) for simple arrays"},
				UseCases: map[string]string{
					"array": "For simple arrays without complex operations",
				},
			},
			"requests": {
				Weight:       "medium",
				Alternatives: []string{"urllib (stdlib) for simple HTTP requests"},
			},
		},
	}
}

// LoadKnowledgeTable reads an alternate heavy-library registry from a TOML
// file. The loaded table fully replaces the built-in one.
//
// Expected shape:
//
//	[libraries.pandas]
//	weight = "heavy"
//	alternatives = ["csv (stdlib)"]
func LoadKnowledgeTable(path string) (m.KnowledgeTable, error) {
	var table m.KnowledgeTable

	if _, err := toml.DecodeFile(path, &table); err != nil {
		return m.KnowledgeTable{}, fmt.Errorf("failed to load knowledge table %s: %w", path, err)
	}

	if len(table.Libraries) == 0 {
		return m.KnowledgeTable{}, fmt.Errorf("knowledge table %s defines no libraries", path)
	}

	if err := table.Validate(); err != nil {
		return m.KnowledgeTable{}, fmt.Errorf("invalid knowledge table %s: %w", path, err)
	}

	return table, nil
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() KnowledgeTable {
	return KnowledgeTable{
		Libraries: map[string]LibraryInfo{
			"pandas": {Weight: "heavy", Alternatives: []string{"csv (stdlib)"}},
		},
	}
}

func TestKnowledgeTableLookupReducesDottedPaths(t *testing.T) {
	t.Parallel()

	table := testTable()

	tests := []struct {
		module string
		found  bool
	}{
		{"pandas", true},
		{"pandas.io.parsers", true},
		{"numpy", false},
		{"pandasql", false},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			t.Parallel()

			base, info, ok := table.Lookup(tt.module)
			assert.Equal(t, tt.found, ok)

			if tt.found {
				assert.Equal(t, "pandas", base)
				assert.Equal(t, "heavy", info.Weight)
			}
		})
	}
}

func TestKnowledgeTableValidateRejectsDottedKeys(t *testing.T) {
	t.Parallel()

	table := KnowledgeTable{
		Libraries: map[string]LibraryInfo{
			"pandas.io": {Weight: "heavy"},
		},
	}

	err := table.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-level module name")
}

func TestKnowledgeTableValidateRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	table := KnowledgeTable{Libraries: map[string]LibraryInfo{"": {}}}

	require.Error(t, table.Validate())
}

func TestKnowledgeTableValidateAcceptsTopLevelKeys(t *testing.T) {
	t.Parallel()

	require.NoError(t, testTable().Validate())
}

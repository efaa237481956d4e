package adapter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSarifExporterWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, NewSarifExporter().Write(&buf, sampleRun()))

	var report struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID               string `json:"id"`
						ShortDescription struct {
							Text string `json:"text"`
						} `json:"shortDescription"`
						Help struct {
							Text string `json:"text"`
						} `json:"help"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
		} `json:"runs"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "2.1.0", report.Version)
	require.Len(t, report.Runs, 1)

	run := report.Runs[0]
	assert.Equal(t, "codeflash", run.Tool.Driver.Name)
	require.Len(t, run.Results, 2)
	assert.Equal(t, "heavy-import", run.Results[0].RuleID)
	assert.Contains(t, run.Results[0].Message.Text, "Heavy import: pandas")

	ruleIDs := make([]string, 0, len(run.Tool.Driver.Rules))
	ruleHelp := make(map[string]string, len(run.Tool.Driver.Rules))

	for _, rule := range run.Tool.Driver.Rules {
		ruleIDs = append(ruleIDs, rule.ID)
		ruleHelp[rule.ID] = rule.Help.Text

		assert.NotEmpty(t, rule.ShortDescription.Text, rule.ID)
	}

	assert.ElementsMatch(t, []string{"heavy-import", "loop-accumulation"}, ruleIDs)
	assert.Equal(t, "Category: import_optimization", ruleHelp["heavy-import"])
	assert.Equal(t, "Category: memory_pattern", ruleHelp["loop-accumulation"])
}

func TestSarifExporterEmptyRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, NewSarifExporter().Write(&buf, sampleRunEmpty()))
	assert.Contains(t, buf.String(), "2.1.0")
}

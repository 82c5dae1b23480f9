package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

const pricingCriteria = `
table: llm_model_pricing
conditions:
  - {field: provider, op: eq, value: openai}
  - {field: price, op: gt, value: 10}
`

func TestSQLCommand_Select(t *testing.T) {
	path := writeCriteriaFile(t, pricingCriteria)

	out, err := runCommand(t, "sql", path)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM llm_model_pricing WHERE provider = 'openai' AND price > 10\n",
		out)
}

func TestSQLCommand_Count(t *testing.T) {
	path := writeCriteriaFile(t, pricingCriteria)

	out, err := runCommand(t, "sql", "--count", path)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT COUNT(*) FROM llm_model_pricing WHERE provider = 'openai' AND price > 10\n",
		out)
}

func TestSQLCommand_Params(t *testing.T) {
	path := writeCriteriaFile(t, pricingCriteria)

	out, err := runCommand(t, "sql", "--params", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "SELECT * FROM llm_model_pricing WHERE provider = ? AND price > ?", lines[0])
	assert.Equal(t, "  $1 = openai", lines[1])
	assert.Equal(t, "  $2 = 10", lines[2])
}

func TestSQLCommand_JSONFormat(t *testing.T) {
	path := writeCriteriaFile(t, pricingCriteria)

	out, err := runCommand(t, "--format", "json", "sql", "--params", path)
	require.NoError(t, err)

	var result struct {
		Query string `json:"query"`
		Args  []any  `json:"args"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "SELECT * FROM llm_model_pricing WHERE provider = ? AND price > ?", result.Query)
	require.Len(t, result.Args, 2)
	assert.Equal(t, "openai", result.Args[0])
}

func TestSQLCommand_InvalidFormat(t *testing.T) {
	path := writeCriteriaFile(t, pricingCriteria)

	_, err := runCommand(t, "--format", "xml", "sql", path)
	require.Error(t, err)
}

func TestSQLCommand_BadCriteriaFile(t *testing.T) {
	path := writeCriteriaFile(t, "table: t\nconditions:\n  - {field: f, op: wat, value: 1}")

	_, err := runCommand(t, "sql", path)
	require.Error(t, err)
}

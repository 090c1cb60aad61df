package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propquery/internal/apperr"
	"propquery/internal/queryparser"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "3", "bed", "condo", "under", "400k")
	require.NoError(t, err)

	var parsed queryparser.ParsedQuery
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.NotNil(t, parsed.Filters.Beds)
	assert.Equal(t, 3, *parsed.Filters.Beds)
	require.NotNil(t, parsed.Filters.MaxPrice)
	assert.Equal(t, 400000, *parsed.Filters.MaxPrice)
	assert.Equal(t, "3 bed condo under 400k", parsed.OriginalQuery)
	assert.Equal(t, []string{"beds", "type", "maxPrice"}, parsed.ExtractedFeatures)
}

func TestParseCommand_Params(t *testing.T) {
	out, err := execute(t, "parse", "--params", "--city", "Halifax", "2 bath condo")
	require.NoError(t, err)
	assert.Equal(t, "baths=2&location=Halifax&type=condo", strings.TrimSpace(out))
}

func TestParseCommand_Pretty(t *testing.T) {
	out, err := execute(t, "parse", "--pretty", "pool")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"filters\": {")
}

func TestParseCommand_Errors(t *testing.T) {
	_, err := execute(t, "parse")
	assert.Error(t, err)

	_, err = execute(t, "parse", "   ")
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "propquery dev (built unknown, commit unknown)\n", out)
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propwire/resolve-cli/internal/model"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"match", "resolve", "group", "geocode"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "resolve-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestResolveCommand_Flags(t *testing.T) {
	require.NotNil(t, resolveCmd.Flags().Lookup("input"))
	require.NotNil(t, resolveCmd.Flags().Lookup("format"))
	require.NotNil(t, resolveCmd.Flags().Lookup("save"))
	require.NotNil(t, resolveCmd.Flags().Lookup("address"))
}

func TestGroupCommand_Flags(t *testing.T) {
	require.NotNil(t, groupCmd.Flags().Lookup("format"))
	require.NotNil(t, groupCmd.Flags().Lookup("save"))
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeOutput(&buf, "json", model.Match{Match: true, Confidence: 100, Method: model.MethodExact})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"method": "exact"`)
}

func TestWriteOutput_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := writeOutput(&buf, "yaml", model.Match{Match: true, Confidence: 100, Method: model.MethodExact})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "method: exact"))
}

func TestWriteOutput_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeOutput(&buf, "xml", model.Match{})
	require.Error(t, err)
}

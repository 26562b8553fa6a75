package funcs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/internal/appcontext"
)

func execute(t *testing.T, format string) (string, error) {
	t.Helper()
	cmd := NewCommand(&appcontext.Mock{OutputFormatFunc: func() string { return format }})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFuncsCommand_JSON(t *testing.T) {
	out, err := execute(t, "json")
	require.NoError(t, err)

	var got []mdhelpers.FuncInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, mdhelpers.Funcs(), got)
}

func TestFuncsCommand_YAML(t *testing.T) {
	out, err := execute(t, "yaml")
	require.NoError(t, err)

	var got []mdhelpers.FuncInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, mdhelpers.Funcs(), got)
}

func TestFuncsCommand_Table(t *testing.T) {
	out, err := execute(t, "table")
	require.NoError(t, err)

	for _, info := range mdhelpers.Funcs() {
		assert.Contains(t, out, info.Name)
	}
	assert.Contains(t, strings.ToUpper(out), "SIGNATURE")
}

func TestFuncsCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "csv")
	assert.Error(t, err)
}

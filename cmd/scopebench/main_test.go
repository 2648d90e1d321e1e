package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/dto"
)

const testBase = `log:
  level: error
  format: json
bench:
  size: 1000
  overrun: 2
  seed: 7
  history: 5
`

// writeConfigs lays out base.yaml and test.yaml in a fresh directory.
func writeConfigs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(testBase), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte("telemetry:\n  enabled: false\n"), 0o600))
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--profile", "test", "--config-dir", writeConfigs(t)}, args...))

	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestRun_FaultJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "run", "--mode", "fault", "--output", "json")
	require.NoError(t, err)

	var resp dto.RunResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "fault", resp.Mode)
	assert.Equal(t, 1000, resp.Size)
	assert.Equal(t, 2, resp.Overrun)
	assert.True(t, resp.Caught, "the scope-fail strategy's fault reaches the runner")
	require.Len(t, resp.Results, 4)
	for _, res := range resp.Results {
		assert.True(t, res.Faulted, "%s should fault", res.Strategy)
	}
}

func TestRun_CleanTable(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "run")
	require.NoError(t, err)

	assert.Contains(t, out, "mode clean, 1000 elements")
	assert.NotContains(t, out, "past the end")
	for _, name := range []string{"comma-ok", "value-error", "panic-recover", "scope-fail"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Total time:")
}

func TestRun_RejectsBadFlags(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "run", "--mode", "sideways")
	require.Error(t, err)

	_, err = execute(t, "", "run", "--output", "xml")
	require.ErrorContains(t, err, `unknown output "xml"`)
}

func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--profile", "test", "--config-dir", t.TempDir(), "run"})

	err := root.ExecuteContext(t.Context())
	require.ErrorContains(t, err, "loading config")
}

func TestInteractive_CleanThenFaultThenStop(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "2\n0\n", "interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "Testing clean")
	assert.Contains(t, out, "Testing fault")
	assert.Contains(t, out, "+ 2 past the end")
	assert.Equal(t, 2, strings.Count(out, "Continue? 1 - clean, 2 - fault, 0 - stop"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "interactive", "serve"})

	for _, flag := range []string{"profile", "config-dir"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
}

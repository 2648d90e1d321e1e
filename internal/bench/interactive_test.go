package bench_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-scopeguard/internal/bench"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// scriptedExecutor records requested modes and returns canned runs.
type scriptedExecutor struct {
	modes []run.Mode
	err   error
}

func (e *scriptedExecutor) Execute(_ context.Context, mode run.Mode) (*run.Run, error) {
	e.modes = append(e.modes, mode)
	if e.err != nil {
		return nil, e.err
	}
	return &run.Run{ID: "r", Mode: mode, Size: 1}, nil
}

func TestInteractive_MenuLoop(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{}
	in := strings.NewReader("2\nbogus\n1\n0\n")
	var out bytes.Buffer

	require.NoError(t, bench.Interactive(context.Background(), in, &out, exec))

	assert.Equal(t, []run.Mode{run.ModeClean, run.ModeFault, run.ModeClean}, exec.modes)
	assert.Contains(t, out.String(), `Unknown choice "bogus"`)
	assert.Equal(t, 4, strings.Count(out.String(), "Continue? 1 - clean, 2 - fault, 0 - stop"))
}

func TestInteractive_StopsAtEndOfInput(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{}
	var out bytes.Buffer

	require.NoError(t, bench.Interactive(context.Background(), strings.NewReader(""), &out, exec))
	assert.Equal(t, []run.Mode{run.ModeClean}, exec.modes)
}

func TestInteractive_ReportsFailedRuns(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{err: errors.New("store full")}
	var out bytes.Buffer

	require.NoError(t, bench.Interactive(context.Background(), strings.NewReader("0\n"), &out, exec))
	assert.Contains(t, out.String(), "Run failed: store full")
}

func TestInteractive_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &scriptedExecutor{}
	err := bench.Interactive(ctx, strings.NewReader("1\n"), &bytes.Buffer{}, exec)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, exec.modes)
}

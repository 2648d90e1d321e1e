package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
)

var errScope = errors.New("scope failed")

// withFailureGuard runs a scope holding an on-failure guard and reports the
// scope's error. Returning fail as the error models raising inside the scope.
func withFailureGuard(rec *recorder, fail bool) (err error) {
	g := guard.OnFailure(guard.ErrorResult(&err), rec.add("2"))
	defer g.Close()

	if fail {
		return errScope
	}
	return nil
}

func withSuccessGuard(rec *recorder, fail bool) (err error) {
	g := guard.OnSuccess(guard.ErrorResult(&err), rec.add("3"))
	defer g.Close()

	if fail {
		return errScope
	}
	return nil
}

func TestOnFailure_FiresOnlyWhenScopeFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fail bool
		want []string
	}{
		{name: "error raised and caught by caller", fail: true, want: []string{"2"}},
		{name: "no error", fail: false, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var rec recorder
			if err := withFailureGuard(&rec, tt.fail); err != nil && !errors.Is(err, errScope) {
				t.Fatalf("unexpected error: %v", err)
			}

			rec.requireLog(t, tt.want...)
		})
	}
}

func TestOnSuccess_FiresOnlyWhenScopeSucceeds(t *testing.T) {
	t.Parallel()

	var rec recorder
	require.NoError(t, withSuccessGuard(&rec, false))
	rec.requireLog(t, "3")

	var failed recorder
	err := withSuccessGuard(&failed, true)
	require.ErrorIs(t, err, errScope, "the error must still reach the caller")
	failed.requireLog(t)
}

func TestNewErrorGuards_PanicIsNewError(t *testing.T) {
	t.Parallel()

	var rec recorder
	got := func() (v any) {
		defer func() { v = recover() }()

		s := guard.OnSuccess(nil, rec.add("success"))
		defer s.Close()

		f := guard.OnFailure(nil, rec.add("failure"))
		defer f.Close()

		panic("boom")
	}()

	assert.Equal(t, "boom", got, "the original panic value must be re-raised")
	rec.requireLog(t, "failure")
}

func TestNewErrorGuards_ErrorPanicKeepsIdentity(t *testing.T) {
	t.Parallel()

	var rec recorder
	got := func() (v any) {
		defer func() { v = recover() }()

		f := guard.OnFailure(nil, rec.add("undo"))
		defer f.Close()

		panic(errScope)
	}()

	err, ok := got.(error)
	require.True(t, ok, "recovered %T, want error", got)
	assert.Same(t, errScope, err)
	rec.requireLog(t, "undo")
}

// cleanup runs guards from a function invoked while an outer panic unwinds.
func cleanup(rec *recorder) {
	f := guard.OnFailure(nil, rec.add("F"))
	defer f.Close()

	s := guard.OnSuccess(nil, rec.add("S"))
	defer s.Close()
}

func TestNewErrorGuards_OuterPanicIsNotNew(t *testing.T) {
	t.Parallel()

	var rec recorder
	got := func() (v any) {
		defer func() { v = recover() }()
		defer cleanup(&rec)

		panic("outer")
	}()

	assert.Equal(t, "outer", got)
	rec.requireLog(t, "S")
}

func TestOnFailure_CounterIgnoresOuterError(t *testing.T) {
	t.Parallel()

	var (
		c   guard.Counter
		rec recorder
	)

	inner := func(fail bool) {
		f := guard.OnFailure(&c, rec.add("F"))
		defer f.Close()

		s := guard.OnSuccess(&c, rec.add("S"))
		defer s.Close()

		if fail {
			c.Raise()
		}
	}

	c.Raise()
	inner(false)
	rec.requireLog(t, "S")

	inner(true)
	rec.requireLog(t, "S", "F")
	assert.Equal(t, 2, c.CurrentErrorCount())

	c.Catch()
	c.Catch()
	assert.Zero(t, c.CurrentErrorCount())
}

func TestCounter_PropagateRaisesReturnedError(t *testing.T) {
	t.Parallel()

	var (
		c   guard.Counter
		rec recorder
	)

	step := func(fail bool) (err error) {
		g := guard.OnFailure(&c, rec.add("rollback"))
		defer g.Close()
		defer c.Propagate(&err)

		if fail {
			return errScope
		}
		return nil
	}

	require.NoError(t, step(false))
	rec.requireLog(t)
	assert.Zero(t, c.CurrentErrorCount())

	require.ErrorIs(t, step(true), errScope)
	rec.requireLog(t, "rollback")
	assert.Equal(t, 1, c.CurrentErrorCount())

	c.Catch()
	assert.Zero(t, c.CurrentErrorCount())
}

func TestOnFailure_DismissedNeverFires(t *testing.T) {
	t.Parallel()

	var rec recorder
	commit := func() (err error) {
		g := guard.OnFailure(guard.ErrorResult(&err), rec.add("rollback"))
		defer g.Close()

		g.Dismiss()
		assert.True(t, g.Dismissed())
		return errScope
	}

	require.ErrorIs(t, commit(), errScope)
	rec.requireLog(t)
}

func TestOnFailure_MoveKeepsSnapshot(t *testing.T) {
	t.Parallel()

	var (
		c   guard.Counter
		rec recorder
	)

	c.Raise()
	a := guard.OnFailure(&c, rec.add("F"))

	func() {
		b, err := a.Move()
		require.NoError(t, err)
		defer b.Close()

		assert.True(t, a.Dismissed())
		assert.False(t, b.Dismissed())
	}()
	a.Close()

	rec.requireLog(t)
}

func TestOnFailure_PanickingActionIsContained(t *testing.T) {
	t.Parallel()

	var crashes []guard.Crash
	got := func() (v any) {
		defer func() { v = recover() }()

		g := guard.OnFailure(nil, func() { panic("undo failed") },
			guard.WithName("undo"),
			guard.WithTerminate(func(c guard.Crash) { crashes = append(crashes, c) }),
		)
		defer g.Close()

		panic("original")
	}()

	assert.Equal(t, "original", got, "the action's panic must not mask the original")
	require.Len(t, crashes, 1)
	assert.Equal(t, "undo failed", crashes[0].Value)
	assert.Equal(t, guard.VariantFailure, crashes[0].Variant)
}

func TestOnSuccess_PanickingActionPropagates(t *testing.T) {
	t.Parallel()

	terminated := false
	got := func() (v any) {
		defer func() { v = recover() }()

		g := guard.OnSuccess(nil, func() { panic("commit failed") },
			guard.WithTerminate(func(guard.Crash) { terminated = true }),
		)
		defer g.Close()

		return nil
	}()

	assert.Equal(t, "commit failed", got)
	assert.False(t, terminated)
}

func TestNewErrorGuards_HooksReportVariant(t *testing.T) {
	t.Parallel()

	var hooks hookCounter
	func() {
		f := guard.OnFailure(nil, func() {}, guard.WithName("f"), guard.WithHooks(&hooks))
		defer f.Close()

		s := guard.OnSuccess(nil, func() {}, guard.WithName("s"), guard.WithHooks(&hooks))
		defer s.Close()
	}()

	assert.Equal(t, []string{"s/success"}, hooks.fired)
	assert.Equal(t, []string{"f/failure"}, hooks.dismissed)
}

func TestNewErrorGuard_ZeroValueCloseIsNoop(t *testing.T) {
	t.Parallel()

	var g guard.NewErrorGuard[guard.Func]
	g.Close()
	assert.True(t, g.Dismissed())

	nilFn := guard.OnFailure(nil, nil)
	assert.True(t, nilFn.Dismissed())
}

func TestOnSuccessAction_RunsRunner(t *testing.T) {
	t.Parallel()

	var (
		rec  recorder
		plan copyPlan
	)

	func() {
		g, err := guard.OnSuccessAction(nil, recordingAction{label: "commit", rec: &rec, plan: &plan})
		require.NoError(t, err)
		defer g.Close()

		f, err := guard.OnFailureAction(nil, recordingAction{label: "rollback", rec: &rec, plan: &plan})
		require.NoError(t, err)
		defer f.Close()
	}()

	rec.requireLog(t, "commit")
}

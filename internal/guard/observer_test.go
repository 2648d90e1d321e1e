package guard_test

import (
	"testing"

	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
	"github.com/jsamuelsen11/go-scopeguard/mocks"
)

func TestErrorResult(t *testing.T) {
	t.Parallel()

	var err error
	obs := guard.ErrorResult(&err)
	if got := obs.CurrentErrorCount(); got != 0 {
		t.Errorf("CurrentErrorCount() = %d, want 0", got)
	}

	err = errScope
	if got := obs.CurrentErrorCount(); got != 1 {
		t.Errorf("CurrentErrorCount() = %d, want 1", got)
	}

	if got := guard.ErrorResult(nil).CurrentErrorCount(); got != 0 {
		t.Errorf("ErrorResult(nil).CurrentErrorCount() = %d, want 0", got)
	}
}

func TestCounter_CatchNeverGoesNegative(t *testing.T) {
	t.Parallel()

	var c guard.Counter
	c.Catch()
	if got := c.CurrentErrorCount(); got != 0 {
		t.Errorf("CurrentErrorCount() = %d, want 0", got)
	}

	c.Raise()
	c.Raise()
	c.Catch()
	if got := c.CurrentErrorCount(); got != 1 {
		t.Errorf("CurrentErrorCount() = %d, want 1", got)
	}

	c.Propagate(nil)
	if got := c.CurrentErrorCount(); got != 1 {
		t.Errorf("Propagate(nil) changed count to %d", got)
	}
}

func TestObservers_Sums(t *testing.T) {
	t.Parallel()

	var (
		c   guard.Counter
		err = errScope
	)
	c.Raise()
	c.Raise()

	obs := guard.Observers(&c, guard.ErrorResult(&err), nil, guard.ObserverFunc(func() int { return 4 }))
	if got := obs.CurrentErrorCount(); got != 7 {
		t.Errorf("CurrentErrorCount() = %d, want 7", got)
	}
}

func TestOnFailure_SamplesObserverTwice(t *testing.T) {
	t.Parallel()

	obs := mocks.NewMockObserver(t)
	obs.EXPECT().CurrentErrorCount().Return(3).Once()
	obs.EXPECT().CurrentErrorCount().Return(4).Once()

	var rec recorder
	func() {
		g := guard.OnFailure(obs, rec.add("undo"))
		defer g.Close()
	}()

	rec.requireLog(t, "undo")
}

func TestOnSuccess_UnchangedCountIsSuccess(t *testing.T) {
	t.Parallel()

	obs := mocks.NewMockObserver(t)
	obs.EXPECT().CurrentErrorCount().Return(2).Twice()

	var rec recorder
	func() {
		g := guard.OnSuccess(obs, rec.add("commit"))
		defer g.Close()
	}()

	rec.requireLog(t, "commit")
}

func TestOnSuccess_DroppedCountIsSuccess(t *testing.T) {
	t.Parallel()

	obs := mocks.NewMockObserver(t)
	obs.EXPECT().CurrentErrorCount().Return(2).Once()
	obs.EXPECT().CurrentErrorCount().Return(1).Once()

	var rec recorder
	func() {
		g := guard.OnSuccess(obs, rec.add("commit"))
		defer g.Close()
	}()

	rec.requireLog(t, "commit")
}

package bench

import (
	"errors"
	"time"

	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
)

// Strategy names.
const (
	NameCommaOK      = "comma-ok"
	NameValueError   = "value-error"
	NamePanicRecover = "panic-recover"
	NameScopeFail    = "scope-fail"
)

// Outcome is what one strategy reports about summing the first n indices of
// a dataset.
type Outcome struct {
	Sum        int64
	Elapsed    time.Duration
	Faulted    bool
	FaultAfter time.Duration
}

// Strategy sums indices [0, n) of a dataset, stopping at the first
// out-of-range access. Sum writes into out as it goes so that a strategy
// whose fault escapes still leaves its progress behind. Elapsed is filled
// in by the caller.
type Strategy interface {
	Name() string
	Sum(ds *Dataset, n int, out *Outcome)
}

// Strategies returns the four strategies in the order a run executes them.
// opts are applied to the scope-fail guard.
func Strategies(opts ...guard.Option) []Strategy {
	return []Strategy{
		CommaOK{},
		ValueError{},
		PanicRecover{},
		ScopeFail{Options: opts},
	}
}

// CommaOK checks every access with At's boolean result.
type CommaOK struct{}

func (CommaOK) Name() string { return NameCommaOK }

func (CommaOK) Sum(ds *Dataset, n int, out *Outcome) {
	start := time.Now()

	var sum int64
	for i := 0; i < n; i++ {
		v, ok := ds.At(i)
		if !ok {
			out.Faulted = true
			out.FaultAfter = time.Since(start)
			break
		}
		sum += int64(v)
	}
	out.Sum = sum
}

// ValueError checks every access with Checked's error result.
type ValueError struct{}

func (ValueError) Name() string { return NameValueError }

func (ValueError) Sum(ds *Dataset, n int, out *Outcome) {
	start := time.Now()

	var sum int64
	for i := 0; i < n; i++ {
		v, err := ds.Checked(i)
		if err != nil {
			out.Faulted = true
			out.FaultAfter = time.Since(start)
			break
		}
		sum += int64(v)
	}
	out.Sum = sum
}

// PanicRecover reads with Must and recovers the fault locally.
type PanicRecover struct{}

func (PanicRecover) Name() string { return NamePanicRecover }

func (PanicRecover) Sum(ds *Dataset, n int, out *Outcome) {
	start := time.Now()

	var sum int64
	defer func() {
		out.Sum = sum
		if v := recover(); v != nil {
			if !isOutOfRange(v) {
				panic(v)
			}
			out.Faulted = true
			out.FaultAfter = time.Since(start)
		}
	}()

	for i := 0; i < n; i++ {
		sum += int64(ds.Must(i))
	}
}

// ScopeFail reads with Must and notes the fault with an on-failure guard.
// The fault is not recovered: it keeps propagating to the caller.
type ScopeFail struct {
	Options []guard.Option
}

func (ScopeFail) Name() string { return NameScopeFail }

func (s ScopeFail) Sum(ds *Dataset, n int, out *Outcome) {
	start := time.Now()

	var sum int64
	g := guard.OnFailure(nil, func() {
		out.Sum = sum
		out.Faulted = true
		out.FaultAfter = time.Since(start)
	}, append([]guard.Option{guard.WithName(NameScopeFail)}, s.Options...)...)
	defer g.Close()

	for i := 0; i < n; i++ {
		sum += int64(ds.Must(i))
	}
	out.Sum = sum
}

func isOutOfRange(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, ErrOutOfRange)
}

package guard

import "fmt"

// Copier is implemented by actions whose copy into a guard can fail, for
// example an action that snapshots state or reserves memory when it is
// bound. Copy returns an independent action for the guard to own.
//
// Actions that do not implement Copier are taken as they are; copying a Go
// value cannot fail.
type Copier[R Runner] interface {
	Copy() (R, error)
}

// bind captures r for a new guard. While capture is in progress a failsafe
// guard holds a reference to r; if capture fails the failsafe runs r, so
// the caller's action is never silently dropped.
func bind[R Runner](r R, inv Invocation, v Variant, s settings) (R, error) {
	failsafe := makeFailsafe(r, inv, v, s)
	defer failsafe.Close()

	action, err := capture(r)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("%w: %w", ErrCapture, err)
	}

	failsafe.core.release()
	return action, nil
}

// makeFailsafe returns an empty guard when capturing r cannot fail, and an
// armed guard over r otherwise.
func makeFailsafe[R Runner](r R, inv Invocation, v Variant, s settings) Guard[Func] {
	if _, ok := any(r).(Copier[R]); !ok {
		return Guard[Func]{}
	}
	return Guard[Func]{core: armed(Func(r.Run), inv, v, s)}
}

// capture copies r through Copier when it has one. A panic inside Copy is
// reported as a *PanicError.
func capture[R Runner](r R) (action R, err error) {
	c, ok := any(r).(Copier[R])
	if !ok {
		return r, nil
	}

	defer func() {
		if v := recover(); v != nil {
			var zero R
			action, err = zero, &PanicError{Value: v}
		}
	}()
	return c.Copy()
}

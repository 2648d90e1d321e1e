package guard

// Observer reports how many errors are currently propagating in the calling
// flow of control. NewErrorGuard samples it at construction and at Close.
type Observer interface {
	CurrentErrorCount() int
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func() int

// CurrentErrorCount calls f.
func (f ObserverFunc) CurrentErrorCount() int { return f() }

// ErrorResult observes a function's named error result: it counts one error
// while *errp is non-nil. Deferred calls run after the return value is set,
// so a guard closed by defer sees the error being returned.
func ErrorResult(errp *error) Observer {
	return errorResult{errp: errp}
}

type errorResult struct {
	errp *error
}

func (r errorResult) CurrentErrorCount() int {
	if r.errp != nil && *r.errp != nil {
		return 1
	}
	return 0
}

// Counter is an explicit stack of propagating errors. Raise pushes when an
// error starts propagating; Catch pops when a caller handles it.
//
// A Counter belongs to a single flow of control and is not safe for
// concurrent use.
type Counter struct {
	depth int
}

// Raise records an error that has started propagating.
func (c *Counter) Raise() {
	c.depth++
}

// Catch records that the innermost propagating error was handled. It never
// drops the count below zero.
func (c *Counter) Catch() {
	if c.depth > 0 {
		c.depth--
	}
}

// CurrentErrorCount returns the number of errors raised and not yet caught.
func (c *Counter) CurrentErrorCount() int {
	return c.depth
}

// Propagate raises if *errp is non-nil. Defer it after the guards of a
// function so that it runs before them:
//
//	g := guard.OnFailure(counter, undo)
//	defer g.Close()
//	defer counter.Propagate(&err)
//
// The caller that handles the returned error calls Catch.
func (c *Counter) Propagate(errp *error) {
	if errp != nil && *errp != nil {
		c.Raise()
	}
}

// Observers sums several observers into one. Nil entries count zero.
func Observers(obs ...Observer) Observer {
	return ObserverFunc(func() int {
		total := 0
		for _, o := range obs {
			total += errorCount(o)
		}
		return total
	})
}

func errorCount(o Observer) int {
	if o == nil {
		return 0
	}
	return o.CurrentErrorCount()
}

// Package guard provides scope guards: cleanup actions registered where a
// resource is acquired and run exactly once when the enclosing function
// returns, however it returns.
//
// Three entry points cover the common policies:
//
//	func copyFile(dst, src string) (err error) {
//	    in, err := os.Open(src)
//	    if err != nil {
//	        return err
//	    }
//	    closeIn := guard.OnExit(func() { _ = in.Close() })
//	    defer closeIn.Close()
//
//	    out, err := os.Create(dst)
//	    if err != nil {
//	        return err
//	    }
//	    removeOut := guard.OnFailure(guard.ErrorResult(&err), func() { _ = os.Remove(dst) })
//	    defer removeOut.Close()
//
//	    logDone := guard.OnSuccess(guard.ErrorResult(&err), func() { log.Printf("copied %s", dst) })
//	    defer logDone.Close()
//
//	    _, err = io.Copy(out, in)
//	    return errors.Join(err, out.Close())
//	}
//
// # Failure detection
//
// OnFailure and OnSuccess decide at Close time whether a new error is
// propagating. Two sources are combined:
//
//   - a panic unwinding through Close, detected with recover. Close must be
//     deferred directly (defer g.Close()) for this to work; the panic is
//     re-raised with the same value once the guard has run.
//   - an Observer, such as ErrorResult for a named error result or Counter
//     for an explicit raise/catch stack.
//
// The observer is sampled when the guard is built and again at Close. Only
// an increase counts, so a guard created while an older error is already
// unwinding does not mistake that error for its own.
//
// # Ownership
//
// A guard is a value owned by the block that declared it. Do not copy it
// (go vet reports copies) and do not share it between goroutines. Use Move
// to hand the pending action to another guard value. Dismiss cancels the
// action permanently.
//
// # Panicking actions
//
// OnExit and OnFailure actions run in a contained invocation: if the action
// panics, the process is terminated, because the guard may already be
// running on behalf of another panic. OnSuccess actions run only when
// nothing is unwinding, so their panics propagate to the caller normally.
// WithTerminate replaces the termination step.
package guard

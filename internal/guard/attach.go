package guard

// OnExit returns a guard that runs fn when it is closed, unless dismissed.
// fn must be safe to run while a panic is unwinding; if fn itself panics the
// process is terminated. A nil fn yields an empty guard.
func OnExit(fn func(), opts ...Option) Guard[Func] {
	if fn == nil {
		return Guard[Func]{}
	}
	return Guard[Func]{core: armed(Func(fn), Contained, VariantExit, applyOptions(opts))}
}

// OnFailure returns a guard that runs fn only if a new error is propagating
// when it is closed: a panic unwinding through Close, or an increase in the
// count reported by obs. obs may be nil, in which case only panics count.
// A panic from fn terminates the process.
func OnFailure(obs Observer, fn func(), opts ...Option) NewErrorGuard[Func] {
	if fn == nil {
		return NewErrorGuard[Func]{}
	}
	return forNewError(obs, Func(fn), RunOnNewError, applyOptions(opts))
}

// OnSuccess returns a guard that runs fn only if no new error is
// propagating when it is closed. A panic from fn propagates to the caller.
func OnSuccess(obs Observer, fn func(), opts ...Option) NewErrorGuard[Func] {
	if fn == nil {
		return NewErrorGuard[Func]{}
	}
	return forNewError(obs, Func(fn), RunOnSuccess, applyOptions(opts))
}

// OnExitAction is OnExit for an arbitrary Runner. It fails only when the
// action implements Copier and Copy fails, in which case r has already run.
func OnExitAction[R Runner](r R, opts ...Option) (Guard[R], error) {
	return New(r, Contained, opts...)
}

// OnFailureAction is OnFailure for an arbitrary Runner.
func OnFailureAction[R Runner](obs Observer, r R, opts ...Option) (NewErrorGuard[R], error) {
	return NewForNewError(obs, r, RunOnNewError, opts...)
}

// OnSuccessAction is OnSuccess for an arbitrary Runner.
func OnSuccessAction[R Runner](obs Observer, r R, opts ...Option) (NewErrorGuard[R], error) {
	return NewForNewError(obs, r, RunOnSuccess, opts...)
}

package guard

// Policy chooses when a NewErrorGuard runs its action.
type Policy uint8

const (
	// RunOnNewError runs the action only if an error that was not
	// propagating at construction is propagating at Close.
	RunOnNewError Policy = iota

	// RunOnSuccess runs the action only if no such error is propagating.
	RunOnSuccess
)

func (p Policy) invocation() Invocation {
	if p == RunOnNewError {
		return Contained
	}
	return Propagate
}

func (p Policy) variant() Variant {
	if p == RunOnNewError {
		return VariantFailure
	}
	return VariantSuccess
}

// NewErrorGuard is a guard whose action depends on whether a new error is
// propagating when it closes. It compares the error count sampled at
// construction with the count at Close, plus one for a panic unwinding
// through Close.
//
// Close calls recover, so it must be deferred directly:
//
//	g := guard.OnFailure(guard.ErrorResult(&err), rollback)
//	defer g.Close()
//
// Wrapping the call in another closure hides the panic from Close.
type NewErrorGuard[R Runner] struct {
	noCopy   noCopy
	inner    core[R]
	observer Observer
	snapshot int
	policy   Policy
}

// NewForNewError binds r to an error-aware guard. RunOnNewError guards use a
// contained invocation; RunOnSuccess guards let the action's panics
// propagate. Capture failures behave as in New.
func NewForNewError[R Runner](obs Observer, r R, policy Policy, opts ...Option) (NewErrorGuard[R], error) {
	s := applyOptions(opts)

	action, err := bind(r, policy.invocation(), policy.variant(), s)
	if err != nil {
		return NewErrorGuard[R]{}, err
	}
	return forNewError(obs, action, policy, s), nil
}

func forNewError[R Runner](obs Observer, action R, policy Policy, s settings) NewErrorGuard[R] {
	return NewErrorGuard[R]{
		inner:    armed(action, policy.invocation(), policy.variant(), s),
		observer: obs,
		snapshot: errorCount(obs),
		policy:   policy,
	}
}

// Dismiss permanently suppresses the pending action. It is idempotent.
func (g *NewErrorGuard[R]) Dismiss() {
	g.inner.dismiss()
}

// Dismissed reports whether the action will no longer run on Close.
func (g *NewErrorGuard[R]) Dismissed() bool {
	return g.inner.dismissed()
}

// Close applies the guard's policy and runs the action if it still applies.
// A panic recovered here is re-raised with its original value afterwards.
func (g *NewErrorGuard[R]) Close() {
	v := recover()

	live := errorCount(g.observer)
	if v != nil {
		live++
	}

	newError := live > g.snapshot
	if newError != (g.policy == RunOnNewError) {
		g.inner.dismiss()
	}
	g.inner.close()

	if v != nil {
		panic(v)
	}
}

// Move transfers the pending action, the policy and the construction-time
// error count to a new guard, and dismisses g. On failure g keeps the action
// and the error wraps ErrTransfer.
func (g *NewErrorGuard[R]) Move() (NewErrorGuard[R], error) {
	moved, err := g.inner.move()
	if err != nil {
		return NewErrorGuard[R]{}, err
	}
	return NewErrorGuard[R]{
		inner:    moved,
		observer: g.observer,
		snapshot: g.snapshot,
		policy:   g.policy,
	}, nil
}

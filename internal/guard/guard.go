package guard

import (
	"fmt"
	"runtime/debug"
)

// Runner is a cleanup action held by a guard.
type Runner interface {
	Run()
}

// Func adapts an ordinary function to Runner. Copying a Func cannot fail, so
// guards built from one never need a failsafe.
type Func func()

// Run calls f.
func (f Func) Run() { f() }

// Invocation selects what happens when a guard's action panics.
type Invocation uint8

const (
	// Contained hands a panicking action to the terminate handler instead
	// of letting the panic escape Close.
	Contained Invocation = iota

	// Propagate lets a panicking action escape Close.
	Propagate
)

// noCopy lets go vet's copylocks check flag guards copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type state uint8

const (
	stateEmpty     state = iota // nothing bound
	stateArmed                  // action pending
	stateDismissed              // action suppressed, not yet closed
	stateDone                   // fired, reported, or moved away
)

// core is the guard state machine shared by Guard and NewErrorGuard. It is
// a plain value; the exported wrappers carry the noCopy marker.
type core[R Runner] struct {
	action   R
	state    state
	inv      Invocation
	variant  Variant
	settings settings
}

func armed[R Runner](action R, inv Invocation, v Variant, s settings) core[R] {
	return core[R]{
		action:   action,
		state:    stateArmed,
		inv:      inv,
		variant:  v,
		settings: s,
	}
}

func (c *core[R]) dismiss() {
	if c.state == stateArmed {
		c.state = stateDismissed
	}
}

func (c *core[R]) dismissed() bool {
	return c.state != stateArmed
}

// release retires the core without running the action or reporting it.
func (c *core[R]) release() {
	c.state = stateDone
}

// close runs the action if it is still pending. The state moves to done
// before the action runs, so a re-entrant close from the action is a no-op.
func (c *core[R]) close() {
	switch c.state {
	case stateArmed:
		c.state = stateDone
		c.settings.fired(c.variant)
		c.execute()
	case stateDismissed:
		c.state = stateDone
		c.settings.dismissed(c.variant)
	case stateEmpty, stateDone:
	}
}

func (c *core[R]) execute() {
	if c.inv == Propagate {
		c.action.Run()
		return
	}

	defer func() {
		if v := recover(); v != nil {
			c.settings.crash(Crash{
				Name:    c.settings.name,
				Variant: c.variant,
				Value:   v,
				Stack:   debug.Stack(),
			})
		}
	}()
	c.action.Run()
}

// move transfers the action and the dismissed flag out of c. On a failed
// transfer c keeps the action and its state untouched.
func (c *core[R]) move() (core[R], error) {
	if c.state == stateEmpty || c.state == stateDone {
		return core[R]{}, nil
	}

	action, err := capture(c.action)
	if err != nil {
		return core[R]{}, fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	moved := *c
	moved.action = action
	c.state = stateDone
	return moved, nil
}

// Guard runs its action once when closed, unless it was dismissed first.
//
// Guards are meant to live in a local variable and be closed with defer:
//
//	g := guard.OnExit(release)
//	defer g.Close()
//
// The zero Guard holds no action; closing it does nothing.
type Guard[R Runner] struct {
	noCopy noCopy
	core   core[R]
}

// New binds r to a guard with the given invocation policy.
//
// If R implements Copier, the action is captured through Copy. Should Copy
// fail, r itself is run before New returns and the error wraps ErrCapture;
// the returned guard is empty. The action therefore runs exactly once
// whether or not construction succeeds.
func New[R Runner](r R, inv Invocation, opts ...Option) (Guard[R], error) {
	s := applyOptions(opts)

	action, err := bind(r, inv, VariantExit, s)
	if err != nil {
		return Guard[R]{}, err
	}
	return Guard[R]{core: armed(action, inv, VariantExit, s)}, nil
}

// Dismiss permanently suppresses the pending action. It is idempotent.
func (g *Guard[R]) Dismiss() {
	g.core.dismiss()
}

// Dismissed reports whether the action will no longer run on Close.
func (g *Guard[R]) Dismissed() bool {
	return g.core.dismissed()
}

// Close runs the action unless the guard was dismissed. Subsequent calls do
// nothing.
func (g *Guard[R]) Close() {
	g.core.close()
}

// Move transfers ownership of the pending action to a new guard and
// dismisses g. If the transfer fails, g keeps the action and the error wraps
// ErrTransfer; g's own Close then decides whether it runs.
func (g *Guard[R]) Move() (Guard[R], error) {
	moved, err := g.core.move()
	if err != nil {
		return Guard[R]{}, err
	}
	return Guard[R]{core: moved}, nil
}

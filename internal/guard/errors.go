package guard

import (
	"errors"
	"fmt"
)

// ErrCapture is returned when an action could not be bound to a new guard.
// By the time it is returned the action has already run.
var ErrCapture = errors.New("guard: capturing action")

// ErrTransfer is returned when Move could not transfer an action. The
// source guard still owns it.
var ErrTransfer = errors.New("guard: transferring action")

// PanicError carries a value recovered from a panicking Copy.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

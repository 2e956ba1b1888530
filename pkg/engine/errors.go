package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArguments is raised when a run is started with a nil argument slice.
	// An empty, non-nil slice is valid.
	ErrNilArguments = errors.New("appengine: nil arguments")

	// ErrNilStream is returned by RunWithStreams when any stream is nil.
	ErrNilStream = errors.New("appengine: nil stream")

	// ErrApplication wraps every failure raised inside a hook.
	ErrApplication = errors.New("appengine: application exception")
)

// PanicError carries a value recovered from a panicking hook.
type PanicError struct {
	Hook  Hook
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Hook, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func applicationError(h Hook, err error) error {
	if errors.Is(err, ErrApplication) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrApplication, h, err)
}

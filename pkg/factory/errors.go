package factory

import "errors"

var (
	// ErrUnsupportedType is returned for engine types outside the closed set.
	ErrUnsupportedType = errors.New("appengine: unsupported engine type")

	// ErrTypeMismatch is returned when the requested concrete type cannot
	// serve the requested engine type.
	ErrTypeMismatch = errors.New("appengine: engine type mismatch")

	// ErrNotRegistered is returned when no constructor exists for a type.
	ErrNotRegistered = errors.New("appengine: engine not registered")

	// ErrAlreadyRegistered is returned when a type is registered twice.
	ErrAlreadyRegistered = errors.New("appengine: engine already registered")

	// ErrConstruction is returned, on every access, for a type whose
	// constructor panicked or returned nil.
	ErrConstruction = errors.New("appengine: engine construction failed")
)

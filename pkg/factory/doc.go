// Package factory resolves an engine type to the process-wide singleton of
// a concrete engine.
//
// Concrete engines register a constructor once, typically from init or at
// the top of main:
//
//	func init() { factory.MustRegister(NewApp) }
//
// and hosts ask for them by engine type:
//
//	eng, err := factory.For[*App](engine.DefaultConsole)
//	if err != nil { ... }            // ErrUnsupportedType, ErrTypeMismatch, ErrNotRegistered
//	if eng == nil { ... }            // type known but not implemented yet
//	os.Exit(eng.Run(os.Args[1:]))
//
// Each registered type is constructed at most once, on first use, and the
// instance lives until the process exits. There is no teardown.
package factory

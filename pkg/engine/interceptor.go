package engine

// Call describes one hook invocation seen by an Interceptor.
type Call struct {
	Hook   Hook
	Engine Type

	// Run is the sequence number of the run on this controller, from 1.
	Run uint64
}

// Interceptor wraps a hook invocation. It must call next exactly once and
// should return its error unchanged; anything else alters the run.
type Interceptor func(call Call, next func() error) error

// chain composes interceptors so that the first one is outermost.
func chain(interceptors []Interceptor, call Call, fn func() error) func() error {
	next := fn
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic, inner := interceptors[i], next
		next = func() error { return ic(call, inner) }
	}
	return next
}

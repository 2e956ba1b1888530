package engine

import (
	"io"
	"os"

	"github.com/bft-labs/appengine/pkg/lifecycle"
	"github.com/bft-labs/appengine/pkg/log"
)

// Option configures a Controller.
type Option func(*options)

type options struct {
	in              io.Reader
	out             io.Writer
	errOut          io.Writer
	shouldReadInput bool
	shouldReadKey   bool
	usage           string
	logger          log.Logger
	emitter         lifecycle.EventEmitter
	interceptors    []Interceptor
}

func defaultOptions() options {
	return options{
		in:            os.Stdin,
		out:           os.Stdout,
		errOut:        os.Stderr,
		shouldReadKey: true,
		logger:        log.NewNoopLogger(),
	}
}

// WithStreams sets the initial streams. Nil values keep the process defaults.
func WithStreams(in io.Reader, out, errOut io.Writer) Option {
	return func(o *options) {
		if in != nil {
			o.in = in
		}
		if out != nil {
			o.out = out
		}
		if errOut != nil {
			o.errOut = errOut
		}
	}
}

// WithReadInput sets ShouldReadInput.
func WithReadInput(v bool) Option {
	return func(o *options) { o.shouldReadInput = v }
}

// WithReadKey sets ShouldReadKey.
func WithReadKey(v bool) Option {
	return func(o *options) { o.shouldReadKey = v }
}

// WithUsage sets the message printed when argument validation fails.
func WithUsage(msg string) Option {
	return func(o *options) { o.usage = msg }
}

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = log.Or(l) }
}

// WithEventEmitter registers an observer for phase changes.
func WithEventEmitter(e lifecycle.EventEmitter) Option {
	return func(o *options) { o.emitter = e }
}

// WithInterceptors appends hook interceptors. The first one is outermost.
func WithInterceptors(ics ...Interceptor) Option {
	return func(o *options) { o.interceptors = append(o.interceptors, ics...) }
}

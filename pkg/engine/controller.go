package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/bft-labs/appengine/pkg/lifecycle"
	"github.com/bft-labs/appengine/pkg/log"
)

// Controller runs the application lifecycle for one engine.
// Runs on the same Controller are serialized; accessors are safe to call
// from any goroutine.
type Controller struct {
	typ   Type
	hooks Hooks

	// runMu serializes whole runs.
	runMu sync.Mutex
	runs  uint64

	mu              sync.RWMutex
	args            []string
	in              io.Reader
	out             io.Writer
	errOut          io.Writer
	shouldReadInput bool
	shouldReadKey   bool
	usage           string

	tracker      *lifecycle.DefaultTracker
	logger       log.Logger
	interceptors []Interceptor
}

var _ Engine = (*Controller)(nil)

// New creates a controller of the given type driven by hooks.
func New(typ Type, hooks Hooks, opts ...Option) *Controller {
	if hooks == nil {
		panic("engine: nil hooks")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		typ:             typ,
		hooks:           hooks,
		args:            []string{},
		in:              o.in,
		out:             o.out,
		errOut:          o.errOut,
		shouldReadInput: o.shouldReadInput,
		shouldReadKey:   o.shouldReadKey,
		usage:           o.usage,
		tracker:         lifecycle.NewTracker(o.logger, o.emitter),
		logger:          o.logger,
		interceptors:    o.interceptors,
	}
}

// Type returns the engine type fixed at construction.
func (c *Controller) Type() Type { return c.typ }

// Arguments returns a copy of the arguments ingested by the last run.
func (c *Controller) Arguments() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.args))
	copy(out, c.args)
	return out
}

func (c *Controller) In() io.Reader {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.in
}

func (c *Controller) Out() io.Writer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.out
}

func (c *Controller) ErrOut() io.Writer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errOut
}

func (c *Controller) ShouldReadInput() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shouldReadInput
}

func (c *Controller) ShouldReadKey() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shouldReadKey
}

// SetShouldReadInput overrides the input-reading flag for later runs.
func (c *Controller) SetShouldReadInput(v bool) {
	c.mu.Lock()
	c.shouldReadInput = v
	c.mu.Unlock()
}

// SetShouldReadKey overrides the keypress flag.
func (c *Controller) SetShouldReadKey(v bool) {
	c.mu.Lock()
	c.shouldReadKey = v
	c.mu.Unlock()
}

// UsageMessage returns the text printed when validation fails.
func (c *Controller) UsageMessage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usage
}

// SetUsageMessage replaces the usage text.
func (c *Controller) SetUsageMessage(msg string) {
	c.mu.Lock()
	c.usage = msg
	c.mu.Unlock()
}

// Phase returns the phase of the current or last run.
func (c *Controller) Phase() lifecycle.Phase {
	return c.tracker.Phase()
}

// RunWithStreams replaces the streams and runs the lifecycle.
// The streams stay in place for later calls to Run. They are never closed.
func (c *Controller) RunWithStreams(args []string, in io.Reader, out, errOut io.Writer) (int, error) {
	switch {
	case in == nil:
		return ExitFailure, fmt.Errorf("%w: input", ErrNilStream)
	case out == nil:
		return ExitFailure, fmt.Errorf("%w: output", ErrNilStream)
	case errOut == nil:
		return ExitFailure, fmt.Errorf("%w: error", ErrNilStream)
	}

	c.runMu.Lock()
	defer c.runMu.Unlock()

	c.mu.Lock()
	c.in, c.out, c.errOut = in, out, errOut
	c.mu.Unlock()

	return c.run(args), nil
}

// Run executes one lifecycle with the configured streams and returns the
// exit code. It never panics on behalf of a hook.
func (c *Controller) Run(args []string) int {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	return c.run(args)
}

func (c *Controller) run(args []string) int {
	c.runs++
	if c.tracker.Phase() == lifecycle.PhaseTerminated {
		c.transition(lifecycle.PhaseStart, "new run")
	}

	result, err := c.execute(args)
	if err != nil {
		c.raise(err)
		result = ExitFailure
	}

	code := c.terminate(result)
	c.logger.Debug("run finished",
		log.String("engine", c.typ.String()),
		log.Int("run", int(c.runs)),
		log.Int("code", code),
	)
	return code
}

// execute covers phases 1 to 4. Any returned error, panics included,
// still leads to termination.
func (c *Controller) execute(args []string) (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = applicationError(hookRun, &PanicError{Hook: hookRun, Value: r})
		}
	}()

	if args == nil {
		return ExitFailure, ErrNilArguments
	}
	c.mu.Lock()
	c.args = append(make([]string, 0, len(args)), args...)
	c.mu.Unlock()
	c.transition(lifecycle.PhaseArgumentsIngested, "arguments copied")

	ok, err := c.validate()
	if err != nil {
		return ExitFailure, err
	}
	if !ok {
		c.transition(lifecycle.PhaseRejected, "validation failed")
		c.printUsage()
		return ExitFailure, nil
	}
	c.transition(lifecycle.PhaseValidated, "arguments valid")

	if init, ok := c.hooks.(AppInitializer); ok {
		if err := c.call(HookInitApplication, init.InitApplication); err != nil {
			return ExitFailure, err
		}
	}
	c.transition(lifecycle.PhaseAppInitialized, "application initialized")

	if c.ShouldReadInput() {
		if err := c.readInput(); err != nil {
			return ExitFailure, err
		}
	}

	result = c.invokeInitInstance()
	c.transition(lifecycle.PhaseInstanceComplete, "instance finished")
	return result, nil
}

func (c *Controller) validate() (bool, error) {
	v, ok := c.hooks.(Validator)
	if !ok {
		return true, nil
	}
	var valid bool
	err := c.call(HookValidateArguments, func() error {
		var err error
		valid, err = v.ValidateArguments()
		return err
	})
	return valid, err
}

// readInput feeds every non-empty line of In to ProcessLine until EOF.
func (c *Controller) readInput() error {
	r := bufio.NewReader(c.In())
	for {
		line, readErr := r.ReadString('\n')
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			if err := c.call(HookProcessLine, func() error { return c.hooks.ProcessLine(line) }); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}
	}
}

// invokeInitInstance reports failures itself so that a failing instance
// becomes ExitFailure instead of an error.
func (c *Controller) invokeInitInstance() int {
	var ok bool
	err := c.call(HookInitInstance, func() error {
		var err error
		ok, err = c.hooks.InitInstance()
		return err
	})
	if err != nil {
		c.raise(err)
		return ExitFailure
	}
	if ok {
		return ExitSuccess
	}
	return ExitFailure
}

// terminate covers phases 5 and 6. ExitInstance runs on every path, but a
// rejected run always ends with ExitFailure whatever it returns.
func (c *Controller) terminate(result int) int {
	rejected := c.tracker.Phase() == lifecycle.PhaseRejected
	c.transition(lifecycle.PhaseExiting, "exit code "+strconv.Itoa(result))

	code := result
	if ex, ok := c.hooks.(Exiter); ok {
		err := c.call(HookExitInstance, func() error {
			var err error
			code, err = ex.ExitInstance(result)
			return err
		})
		if err != nil {
			c.raise(err)
			code = ExitFailure
		}
	}
	if rejected {
		code = ExitFailure
	}

	c.transition(lifecycle.PhaseTerminated, "exit code "+strconv.Itoa(code))
	return code
}

// call invokes fn through the interceptor chain, turning panics into errors.
func (c *Controller) call(h Hook, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = applicationError(h, &PanicError{Hook: h, Value: r})
		}
	}()

	guarded := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Hook: h, Value: r}
			}
		}()
		return fn()
	}

	call := Call{Hook: h, Engine: c.typ, Run: c.runs}
	if err := chain(c.interceptors, call, guarded)(); err != nil {
		return applicationError(h, err)
	}
	return nil
}

// raise hands err to OnException. A failing OnException is only logged.
func (c *Controller) raise(err error) {
	c.logger.Error("hook failed", log.String("engine", c.typ.String()), log.Err(err))

	if herr := c.call(HookOnException, func() error {
		c.hooks.OnException(err)
		return nil
	}); herr != nil {
		c.logger.Error("exception handler failed", log.Err(herr))
	}
}

func (c *Controller) printUsage() {
	msg := c.UsageMessage()
	if strings.TrimSpace(msg) == "" {
		return
	}
	_, _ = io.WriteString(c.ErrOut(), "Usage:\n\n"+msg)
}

func (c *Controller) transition(p lifecycle.Phase, reason string) {
	if err := c.tracker.TransitionTo(p, reason); err != nil {
		c.logger.Warn("unexpected phase transition", log.Err(err))
	}
}

// Package trace provides an engine.Interceptor that logs every hook call.
//
// Attach it with engine.WithInterceptors(trace.New(logger).Interceptor()).
// It only observes: hook results pass through unchanged, so an engine
// behaves the same with or without it.
package trace

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/appengine/pkg/engine"
	"github.com/bft-labs/appengine/pkg/log"
)

// Tracer logs hook entry and exit with a per-run identifier.
//
// Run numbers come from the controller, so install one Tracer per
// controller. Controllers of different engine types may share a Tracer;
// their ids are kept apart.
type Tracer struct {
	logger log.Logger
	now    func() time.Time
	newID  func() string

	mu    sync.Mutex
	runs  map[engine.Type]runRef
	runID string
}

type runRef struct {
	run uint64
	id  string
}

// New creates a Tracer writing to logger.
func New(logger log.Logger) *Tracer {
	return &Tracer{
		logger: log.Or(logger),
		now:    time.Now,
		newID:  uuid.NewString,
		runs:   map[engine.Type]runRef{},
	}
}

// Interceptor returns the interceptor to install on a controller.
func (t *Tracer) Interceptor() engine.Interceptor {
	return t.intercept
}

// RunID returns the identifier of the most recent run, or "" before any.
func (t *Tracer) RunID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runID
}

func (t *Tracer) intercept(call engine.Call, next func() error) error {
	id := t.idFor(call.Engine, call.Run)
	fields := []log.Field{
		log.String("run_id", id),
		log.String("engine", call.Engine.String()),
		log.String("hook", call.Hook.String()),
	}

	t.logger.Debug("enter", fields...)
	start := t.now()
	err := next()
	fields = append(fields, log.Duration("took", t.now().Sub(start)))

	if err != nil {
		t.logger.Warn("leave", append(fields, log.Err(err))...)
		return err
	}
	t.logger.Debug("leave", fields...)
	return nil
}

// idFor returns a stable id for the run of typ, minting a new one when
// that engine's run number changes.
func (t *Tracer) idFor(typ engine.Type, run uint64) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ref, ok := t.runs[typ]
	if !ok || ref.run != run {
		ref = runRef{run: run, id: t.newID()}
		t.runs[typ] = ref
	}
	t.runID = ref.id
	return ref.id
}

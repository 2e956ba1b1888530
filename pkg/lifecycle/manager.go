package lifecycle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bft-labs/appengine/pkg/log"
)

// ErrInvalidTransition is returned when a phase change is not allowed.
var ErrInvalidTransition = errors.New("lifecycle: invalid phase transition")

// allowed lists the legal successors of each phase.
var allowed = map[Phase][]Phase{
	PhaseStart:             {PhaseArgumentsIngested, PhaseExiting},
	PhaseArgumentsIngested: {PhaseValidated, PhaseRejected, PhaseExiting},
	PhaseValidated:         {PhaseAppInitialized, PhaseExiting},
	PhaseRejected:          {PhaseExiting},
	PhaseAppInitialized:    {PhaseInstanceComplete, PhaseExiting},
	PhaseInstanceComplete:  {PhaseExiting},
	PhaseExiting:           {PhaseTerminated},
	PhaseTerminated:        {PhaseStart},
}

// CanTransition reports whether from -> to is a legal phase change.
func CanTransition(from, to Phase) bool {
	for _, p := range allowed[from] {
		if p == to {
			return true
		}
	}
	return false
}

// DefaultTracker implements Tracker.
type DefaultTracker struct {
	mu           sync.RWMutex
	phase        Phase
	logger       log.Logger
	eventEmitter EventEmitter
}

// NewTracker creates a tracker in PhaseStart. Both arguments may be nil.
func NewTracker(logger log.Logger, emitter EventEmitter) *DefaultTracker {
	return &DefaultTracker{
		phase:        PhaseStart,
		logger:       log.Or(logger),
		eventEmitter: emitter,
	}
}

// Phase returns the current phase.
func (t *DefaultTracker) Phase() Phase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.phase
}

// TransitionTo attempts to move to a new phase.
func (t *DefaultTracker) TransitionTo(next Phase, reason string) error {
	t.mu.Lock()
	prev := t.phase
	if !CanTransition(prev, next) {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prev, next)
	}
	t.phase = next
	t.mu.Unlock()

	// Emit event outside of lock
	if t.eventEmitter != nil {
		t.eventEmitter.OnPhaseChange(prev, next, reason)
	}

	t.logger.Debug("phase transition",
		log.String("from", prev.String()),
		log.String("to", next.String()),
		log.String("reason", reason),
	)

	return nil
}

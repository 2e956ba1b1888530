package lifecycle

// Phase represents where an engine run currently is.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseArgumentsIngested
	PhaseValidated
	PhaseRejected
	PhaseAppInitialized
	PhaseInstanceComplete
	PhaseExiting
	PhaseTerminated
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseArgumentsIngested:
		return "ArgumentsIngested"
	case PhaseValidated:
		return "Validated"
	case PhaseRejected:
		return "Rejected"
	case PhaseAppInitialized:
		return "AppInitialized"
	case PhaseInstanceComplete:
		return "InstanceComplete"
	case PhaseExiting:
		return "Exiting"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// EventEmitter is called when the run phase changes.
type EventEmitter interface {
	OnPhaseChange(previous, current Phase, reason string)
}

// EventEmitterFunc adapts a function to EventEmitter.
type EventEmitterFunc func(previous, current Phase, reason string)

// OnPhaseChange calls f.
func (f EventEmitterFunc) OnPhaseChange(previous, current Phase, reason string) {
	f(previous, current, reason)
}

// Tracker manages the phase state machine for an engine.
type Tracker interface {
	// Phase returns the current phase.
	Phase() Phase

	// TransitionTo attempts to move to a new phase.
	// Returns ErrInvalidTransition if the move is not allowed.
	TransitionTo(next Phase, reason string) error
}

package lifecycle

import (
	"errors"
	"sync"
	"testing"
)

// mockEmitter records phase change events.
type mockEmitter struct {
	mu     sync.Mutex
	events []phaseEvent
}

type phaseEvent struct {
	previous Phase
	current  Phase
	reason   string
}

func (m *mockEmitter) OnPhaseChange(previous, current Phase, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, phaseEvent{previous, current, reason})
}

func (m *mockEmitter) Events() []phaseEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]phaseEvent{}, m.events...)
}

func TestNewTracker(t *testing.T) {
	tr := NewTracker(nil, nil)
	if tr.Phase() != PhaseStart {
		t.Errorf("initial phase = %v, want Start", tr.Phase())
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseStart, "Start"},
		{PhaseArgumentsIngested, "ArgumentsIngested"},
		{PhaseValidated, "Validated"},
		{PhaseRejected, "Rejected"},
		{PhaseAppInitialized, "AppInitialized"},
		{PhaseInstanceComplete, "InstanceComplete"},
		{PhaseExiting, "Exiting"},
		{PhaseTerminated, "Terminated"},
		{Phase(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %s, want %s", tt.phase, got, tt.want)
		}
	}
}

func TestTracker_HappyPath(t *testing.T) {
	em := &mockEmitter{}
	tr := NewTracker(nil, em)

	path := []Phase{
		PhaseArgumentsIngested,
		PhaseValidated,
		PhaseAppInitialized,
		PhaseInstanceComplete,
		PhaseExiting,
		PhaseTerminated,
		PhaseStart,
	}
	for _, p := range path {
		if err := tr.TransitionTo(p, "test"); err != nil {
			t.Fatalf("TransitionTo(%v) error = %v", p, err)
		}
	}

	events := em.Events()
	if len(events) != len(path) {
		t.Fatalf("got %d events, want %d", len(events), len(path))
	}
	if events[0].previous != PhaseStart || events[0].current != PhaseArgumentsIngested {
		t.Errorf("first event = %+v", events[0])
	}
}

func TestTracker_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		to   Phase
	}{
		{"start to validated", PhaseStart, PhaseValidated},
		{"rejected to app initialized", PhaseRejected, PhaseAppInitialized},
		{"instance complete to start", PhaseInstanceComplete, PhaseStart},
		{"terminated to exiting", PhaseTerminated, PhaseExiting},
		{"exiting to exiting", PhaseExiting, PhaseExiting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(nil, nil)
			tr.phase = tt.from

			err := tr.TransitionTo(tt.to, "test")
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("TransitionTo() error = %v, want ErrInvalidTransition", err)
			}
			if tr.Phase() != tt.from {
				t.Errorf("phase changed to %v on invalid transition", tr.Phase())
			}
		})
	}
}

func TestTracker_ExitingReachableFromWorkingPhases(t *testing.T) {
	for _, from := range []Phase{
		PhaseStart,
		PhaseArgumentsIngested,
		PhaseValidated,
		PhaseRejected,
		PhaseAppInitialized,
		PhaseInstanceComplete,
	} {
		if !CanTransition(from, PhaseExiting) {
			t.Errorf("%v -> Exiting should be allowed", from)
		}
	}
}

func TestEventEmitterFunc(t *testing.T) {
	var got []Phase
	tr := NewTracker(nil, EventEmitterFunc(func(_, cur Phase, _ string) {
		got = append(got, cur)
	}))
	_ = tr.TransitionTo(PhaseExiting, "failure")
	_ = tr.TransitionTo(PhaseTerminated, "done")

	if len(got) != 2 || got[0] != PhaseExiting || got[1] != PhaseTerminated {
		t.Errorf("events = %v", got)
	}
}

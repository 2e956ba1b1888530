package engine

import "strconv"

// Type identifies the kind of host application an engine is built for.
// The set is closed; values outside it are rejected by the selector.
type Type int

const (
	DefaultConsole Type = iota
	DefaultWinform
	DefaultWindowsService
	LoggingWindowsService
	LoggingConsole
	LoggingWinform
	TracedWindowsService
	TracedConsole
	TracedWinform

	Unknown Type = -1
)

// String returns the name of the engine type.
func (t Type) String() string {
	switch t {
	case DefaultConsole:
		return "DefaultConsole"
	case DefaultWinform:
		return "DefaultWinform"
	case DefaultWindowsService:
		return "DefaultWindowsService"
	case LoggingWindowsService:
		return "LoggingWindowsService"
	case LoggingConsole:
		return "LoggingConsole"
	case LoggingWinform:
		return "LoggingWinform"
	case TracedWindowsService:
		return "TracedWindowsService"
	case TracedConsole:
		return "TracedConsole"
	case TracedWinform:
		return "TracedWinform"
	case Unknown:
		return "Unknown"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Valid reports whether t belongs to the closed set, Unknown included.
func (t Type) Valid() bool {
	return t == Unknown || (t >= DefaultConsole && t <= TracedWinform)
}

// FixedType is implemented by anything whose engine type never changes.
type FixedType interface {
	Type() Type
}


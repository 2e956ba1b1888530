// Package log provides the logging abstraction used by appengine components.
//
// The engine core never writes diagnostics to an application's own output
// or error streams. Everything it has to say about phase transitions and
// hook failures goes through a Logger, which defaults to NoopLogger.
//
// # Usage
//
// Wrap zerolog:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
//
// Any type with Debug/Info/Warn/Error methods taking a message and a list
// of Field values can be plugged in instead.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log

// Package lifecycle tracks the phase an application engine run is in.
//
// A run moves through a fixed sequence of phases. Tracker enforces the
// legal transitions between them, logs each one and reports it to an
// optional EventEmitter so hosts can observe progress without hooking
// into the engine itself.
//
// # Phases
//
// Valid phase transitions:
//   - Start -> ArgumentsIngested, Exiting
//   - ArgumentsIngested -> Validated, Rejected, Exiting
//   - Validated -> AppInitialized, Exiting
//   - Rejected -> Exiting
//   - AppInitialized -> InstanceComplete, Exiting
//   - InstanceComplete -> Exiting
//   - Exiting -> Terminated
//   - Terminated -> Start
//
// Exiting is reachable from every working phase because the termination
// hook runs even when an earlier phase failed.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package lifecycle

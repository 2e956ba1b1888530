package engine

import "io"

// Engine is the contract every application engine exposes to its host.
type Engine interface {
	FixedType

	// Arguments returns a copy of the arguments ingested by the last run.
	Arguments() []string

	In() io.Reader
	Out() io.Writer
	ErrOut() io.Writer

	// ShouldReadInput reports whether the run consumes In line by line
	// before InitInstance.
	ShouldReadInput() bool

	// ShouldReadKey reports whether the application waits for a keypress
	// on exit. The controller only carries the flag; hooks act on it.
	ShouldReadKey() bool

	// Run executes one full lifecycle with the current streams and
	// returns the exit code.
	Run(args []string) int

	// RunWithStreams replaces all three streams and then behaves like Run.
	// It returns ErrNilStream, without running anything, if any stream is nil.
	RunWithStreams(args []string, in io.Reader, out, errOut io.Writer) (int, error)
}

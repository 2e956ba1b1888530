package engine

// Canonical process exit codes. An Exiter may return any other value.
const (
	ExitSuccess = 0
	ExitFailure = -1
)

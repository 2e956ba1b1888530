package trace

// Version information for the trace module.
const (
	// Version is the current version of the trace module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)

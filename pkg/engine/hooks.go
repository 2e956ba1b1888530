package engine

// Hook names a lifecycle callback.
type Hook int

const (
	HookValidateArguments Hook = iota
	HookInitApplication
	HookProcessLine
	HookInitInstance
	HookOnException
	HookExitInstance

	// hookRun marks failures raised by the controller outside any hook.
	hookRun Hook = -1
)

// String returns the hook's method name.
func (h Hook) String() string {
	switch h {
	case HookValidateArguments:
		return "ValidateArguments"
	case HookInitApplication:
		return "InitApplication"
	case HookProcessLine:
		return "ProcessLine"
	case HookInitInstance:
		return "InitInstance"
	case HookOnException:
		return "OnException"
	case HookExitInstance:
		return "ExitInstance"
	case hookRun:
		return "Run"
	default:
		return "Hook(?)"
	}
}

// Hooks is the behavior every concrete engine must supply.
type Hooks interface {
	// InitInstance is the per-run application logic. Its result selects
	// ExitSuccess or ExitFailure.
	InitInstance() (bool, error)

	// ProcessLine handles one non-empty input line when ShouldReadInput is set.
	ProcessLine(line string) error

	// OnException observes every failure raised during a run.
	OnException(err error)
}

// Validator optionally checks the ingested arguments.
// Returning false rejects the run and prints the usage message.
type Validator interface {
	ValidateArguments() (bool, error)
}

// AppInitializer optionally runs once per run, before any instance logic.
type AppInitializer interface {
	InitApplication() error
}

// Exiter optionally replaces the exit code computed by the run.
// It is called on every path, after failures too.
type Exiter interface {
	ExitInstance(code int) (int, error)
}

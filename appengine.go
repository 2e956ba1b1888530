// Package appengine runs console applications through a fixed lifecycle.
//
// A concrete application embeds engine.Console, supplies its hooks, and is
// obtained as a process-wide singleton through For:
//
//	type App struct{ *appengine.Console }
//
//	func NewApp() *App {
//	    a := &App{}
//	    a.Console = appengine.NewConsole(a)
//	    return a
//	}
//
//	func main() {
//	    appengine.MustRegister(NewApp)
//	    e, err := appengine.For[*App](appengine.DefaultConsole)
//	    if err != nil || e == nil {
//	        os.Exit(appengine.ExitFailure)
//	    }
//	    os.Exit(e.Run(os.Args[1:]))
//	}
package appengine

import (
	"fmt"

	"github.com/bft-labs/appengine/pkg/engine"
	"github.com/bft-labs/appengine/pkg/factory"
	"github.com/bft-labs/appengine/pkg/lifecycle"
	"github.com/bft-labs/appengine/pkg/log"
	"github.com/bft-labs/appengine/pkg/parser"
	"github.com/bft-labs/appengine/pkg/trace"
)

// Engine is the contract every application engine exposes to its host.
type Engine = engine.Engine

// Console is the DefaultConsole engine base that applications embed.
type Console = engine.Console

// NewConsole creates the DefaultConsole controller driven by hooks.
func NewConsole(hooks engine.Hooks, opts ...engine.Option) *Console {
	return engine.NewConsole(hooks, opts...)
}

// Type identifies the kind of host application an engine is built for.
type Type = engine.Type

// Engine types.
const (
	DefaultConsole        = engine.DefaultConsole
	DefaultWinform        = engine.DefaultWinform
	DefaultWindowsService = engine.DefaultWindowsService
	LoggingWindowsService = engine.LoggingWindowsService
	LoggingConsole        = engine.LoggingConsole
	LoggingWinform        = engine.LoggingWinform
	TracedWindowsService  = engine.TracedWindowsService
	TracedConsole         = engine.TracedConsole
	TracedWinform         = engine.TracedWinform
	Unknown               = engine.Unknown
)

// Process exit codes.
const (
	ExitSuccess = engine.ExitSuccess
	ExitFailure = engine.ExitFailure
)

// Register records the constructor used to build the singleton of T.
func Register[T engine.Engine](ctor func() T) error {
	return factory.Register(ctor)
}

// MustRegister is like Register but panics on error.
func MustRegister[T engine.Engine](ctor func() T) {
	factory.MustRegister(ctor)
}

// For resolves typ to the singleton of T. See factory.For for the rules.
func For[T engine.Engine](typ Type) (Engine, error) {
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}
	return factory.For[T](typ)
}

type moduleVersion struct {
	version    string
	minVersion string
}

func modules() map[string]moduleVersion {
	return map[string]moduleVersion{
		"engine":    {engine.Version, engine.MinCompatibleVersion},
		"factory":   {factory.Version, factory.MinCompatibleVersion},
		"lifecycle": {lifecycle.Version, lifecycle.MinCompatibleVersion},
		"log":       {log.Version, log.MinCompatibleVersion},
		"parser":    {parser.Version, parser.MinCompatibleVersion},
		"trace":     {trace.Version, trace.MinCompatibleVersion},
	}
}

// validateModuleVersions checks that all module versions are compatible.
func validateModuleVersions() error {
	return checkVersions(modules())
}

func checkVersions(mods map[string]moduleVersion) error {
	for name, m := range mods {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}
	return nil
}

// isVersionCompatible reports whether version >= minVersion.
// Both are "major.minor.patch".
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}

// Package engine implements the application lifecycle shared by every
// appengine host application.
//
// A Controller drives one run of an application through a fixed sequence
// of phases:
//
//  1. argument ingestion (the caller's arguments are copied verbatim)
//  2. validation (ValidateArguments, default: always valid)
//  3. one-time application initialization (InitApplication, default: no-op)
//  4. optional line-by-line input processing (ProcessLine), then InitInstance
//  5. termination (ExitInstance, default: keep the computed code)
//
// Concrete applications supply behavior through Hooks and the optional
// Validator, AppInitializer and Exiter interfaces rather than by
// subclassing. The usual shape is a struct embedding *Console whose own
// methods are the hooks:
//
//	type App struct{ *engine.Console }
//
//	func NewApp() *App {
//	    a := &App{}
//	    a.Console = engine.NewConsole(a, engine.WithUsage("app [options]"))
//	    return a
//	}
//
//	func (a *App) InitInstance() (bool, error) { fmt.Fprintln(a.Out(), "hi"); return true, nil }
//	func (a *App) ProcessLine(line string) error { return nil }
//	func (a *App) OnException(err error)        { fmt.Fprintln(a.ErrOut(), err) }
//
// # Failure handling
//
// Errors returned by hooks and panics raised inside them are treated alike:
// both are wrapped in ErrApplication, handed to OnException and converted
// to ExitFailure. The termination phase runs regardless, and nothing ever
// escapes Run. The only error a caller sees directly is ErrNilStream from
// RunWithStreams, which is reported before any phase starts.
//
// There is no cancellation. A run that reads input blocks until the input
// reaches end-of-file.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package engine

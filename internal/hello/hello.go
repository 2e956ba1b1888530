// Package hello is the sample console engine: it greets the world and waits
// for a key before exiting.
package hello

import (
	"fmt"
	"sync"

	"github.com/spf13/pflag"

	"github.com/bft-labs/appengine/pkg/engine"
	"github.com/bft-labs/appengine/pkg/parser"
)

// DefaultName is greeted when no --name is given.
const DefaultName = "world"

const synopsis = "hello [--name NAME]"

var argParser = parser.NewFlagParser("hello", func(fs *pflag.FlagSet) {
	fs.String("name", DefaultName, "who to greet")
})

// Engine is a DefaultConsole application.
type Engine struct {
	*engine.Console

	mu    sync.Mutex
	name  string
	lines int
}

// New creates the engine. opts are applied on top of the console defaults.
func New(opts ...engine.Option) *Engine {
	e := &Engine{name: DefaultName}
	base := []engine.Option{engine.WithUsage(Usage())}
	e.Console = engine.NewConsole(e, append(base, opts...)...)
	return e
}

// Usage returns the message printed when the arguments are rejected.
func Usage() string {
	return argParser.Usage(synopsis)
}

// ValidateArguments accepts --name and nothing else.
func (e *Engine) ValidateArguments() (bool, error) {
	info, err := argParser.Parse(e.Arguments())
	if err != nil {
		return false, nil
	}
	fi := info.(*parser.FlagInfo)
	if len(fi.Args) > 0 {
		return false, nil
	}
	name, err := fi.Flags.GetString("name")
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	e.name = name
	e.mu.Unlock()
	return true, nil
}

// ProcessLine echoes each input line to Out.
func (e *Engine) ProcessLine(line string) error {
	e.mu.Lock()
	e.lines++
	e.mu.Unlock()

	_, err := fmt.Fprintln(e.Out(), line)
	return err
}

// InitInstance prints the greeting.
func (e *Engine) InitInstance() (bool, error) {
	if _, err := fmt.Fprintln(e.Out(), Greeting(e.Name())); err != nil {
		return false, err
	}
	return true, nil
}

func (e *Engine) OnException(err error) {
	fmt.Fprintln(e.ErrOut(), err)
}

// ExitInstance waits for a key when asked to and then reports success
// whatever code the run produced. Rejected arguments still exit with
// ExitFailure.
func (e *Engine) ExitInstance(int) (int, error) {
	if e.ShouldReadKey() {
		if err := e.WaitForKey(); err != nil {
			fmt.Fprintln(e.ErrOut(), err)
		}
	}
	return engine.ExitSuccess, nil
}

// Name returns who the last validated run greets.
func (e *Engine) Name() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.name
}

// Lines returns how many input lines have been processed across runs.
func (e *Engine) Lines() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines
}

// Greeting formats the line printed for name.
func Greeting(name string) string {
	return "Hello, " + name + "!"
}

var (
	_ engine.Hooks     = (*Engine)(nil)
	_ engine.Validator = (*Engine)(nil)
	_ engine.Exiter    = (*Engine)(nil)
)

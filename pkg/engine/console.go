package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console is the DefaultConsole engine base. Concrete console applications
// embed it; doing so is what makes them acceptable to the selector for
// DefaultConsole.
type Console struct {
	*Controller
}

// consoleEngine is satisfied only by types embedding Console.
type consoleEngine interface {
	Engine
	isDefaultConsole()
}

func (Console) isDefaultConsole() {}

// NewConsole creates a DefaultConsole controller. Input is not read and a
// keypress is expected on exit unless opts say otherwise.
func NewConsole(hooks Hooks, opts ...Option) *Console {
	base := []Option{WithReadInput(false), WithReadKey(true)}
	return &Console{Controller: New(DefaultConsole, hooks, append(base, opts...)...)}
}

// IsConsole reports whether v is, or embeds, a Console. A typed nil pointer
// is classified by its type alone.
func IsConsole(v interface{}) bool {
	_, ok := v.(consoleEngine)
	return ok
}

// WaitForKey blocks until one key is pressed on In. A terminal is switched
// to raw mode for the read so no Enter is needed; any other reader gives up
// one byte. End of input counts as a key.
func (c *Console) WaitForKey() error {
	in := c.In()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("engine: raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, state) }()
	}

	var b [1]byte
	for {
		n, err := in.Read(b[:])
		if n > 0 || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("engine: read key: %w", err)
		}
	}
}

package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// ErrHelp is returned when -h or --help is parsed and no help flag was defined.
var ErrHelp = pflag.ErrHelp

// FlagParser parses console arguments with a pflag.FlagSet.
type FlagParser struct {
	name   string
	define func(fs *pflag.FlagSet)
}

var _ Parser = (*FlagParser)(nil)

// NewFlagParser creates a parser for the program name. define registers
// flags on a fresh FlagSet for every Parse call, so a FlagParser can be
// reused across runs.
func NewFlagParser(name string, define func(fs *pflag.FlagSet)) *FlagParser {
	return &FlagParser{name: name, define: define}
}

// Type returns ConsoleApp.
func (p *FlagParser) Type() Type { return ConsoleApp }

// FlagInfo is the Info produced by FlagParser.
type FlagInfo struct {
	Flags *pflag.FlagSet
	Args  []string
}

// Changed reports whether the named flag was given explicitly.
func (i *FlagInfo) Changed(name string) bool {
	return i.Flags.Changed(name)
}

// Parse parses args. The returned Info is always a *FlagInfo.
func (p *FlagParser) Parse(args []string) (Info, error) {
	fs := p.flagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse %s arguments: %w", p.name, err)
	}
	return &FlagInfo{Flags: fs, Args: fs.Args()}, nil
}

// Usage renders a usage message suitable for Controller.SetUsageMessage.
func (p *FlagParser) Usage(synopsis string) string {
	fs := p.flagSet()
	msg := synopsis
	if flags := fs.FlagUsages(); flags != "" {
		msg += "\n\nOptions:\n" + flags
	}
	return msg
}

func (p *FlagParser) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(p.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	if p.define != nil {
		p.define(fs)
	}
	return fs
}

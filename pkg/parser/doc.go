// Package parser defines the contract between engines and command-line
// parsers. Engines typically parse in ValidateArguments and reject the run
// when Parse fails.
//
// FlagParser is the ConsoleApp parser. It delegates all syntax to
// github.com/spf13/pflag and adds nothing of its own.
package parser

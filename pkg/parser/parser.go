package parser

// Type identifies the kind of application a parser understands.
type Type int

const (
	ConsoleApp Type = iota
	WinFormApp
	WindowsService

	Unknown Type = -1
)

// String returns the name of the parser type.
func (t Type) String() string {
	switch t {
	case ConsoleApp:
		return "ConsoleApp"
	case WinFormApp:
		return "WinFormApp"
	case WindowsService:
		return "WindowsService"
	default:
		return "Unknown"
	}
}

// FixedType is implemented by anything whose parser type never changes.
type FixedType interface {
	Type() Type
}

// Info is the result of a successful parse. Concrete parsers define what
// it holds.
type Info interface{}

// Parser turns an argument list into an Info.
type Parser interface {
	FixedType
	Parse(args []string) (Info, error)
}

package vm

import "fmt"

type ErrorKind int

const (
	MismatchNumParams ErrorKind = iota
	MismatchType
	UnknownCommand
	MissingVariable
	EmptyStack
	IntegerOverflow
)

var errorKindNames = map[ErrorKind]string{
	MismatchNumParams: "MismatchNumParams",
	MismatchType:      "MismatchType",
	UnknownCommand:    "UnknownCommand",
	MissingVariable:   "MissingVariable",
	EmptyStack:        "EmptyStack",
	IntegerOverflow:   "IntegerOverflow",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseErrorKind maps a kind name such as "EmptyStack" back to its ErrorKind.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for k, v := range errorKindNames {
		if v == name {
			return k, true
		}
	}
	return 0, false
}

// Error is returned by both parsing and evaluation. Token carries the
// offending command keyword or variable name for UnknownCommand and
// MissingVariable, and is empty otherwise.
type Error struct {
	Kind  ErrorKind
	Token string
}

func (e *Error) Error() string {
	switch e.Kind {
	case MismatchNumParams:
		return "mismatched number of parameters"
	case MismatchType:
		return "mismatched type"
	case UnknownCommand:
		return fmt.Sprintf("unknown command %q", e.Token)
	case MissingVariable:
		return fmt.Sprintf("missing variable %q", e.Token)
	case EmptyStack:
		return "empty stack"
	case IntegerOverflow:
		return "integer overflow"
	}
	return e.Kind.String()
}

// Is matches any *Error of the same kind. A target with a Token also
// requires the tokens to be equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Token == "" || t.Token == e.Token
}

var (
	ErrMismatchNumParams = &Error{Kind: MismatchNumParams}
	ErrMismatchType      = &Error{Kind: MismatchType}
	ErrUnknownCommand    = &Error{Kind: UnknownCommand}
	ErrMissingVariable   = &Error{Kind: MissingVariable}
	ErrEmptyStack        = &Error{Kind: EmptyStack}
	ErrIntegerOverflow   = &Error{Kind: IntegerOverflow}
)

func newUnknownCommand(tok string) error {
	return &Error{Kind: UnknownCommand, Token: tok}
}

func NewMissingVariable(name string) error {
	return &Error{Kind: MissingVariable, Token: name}
}

package vm

import (
	"fmt"
	"strconv"
)

// Value is a runtime datum. The set of implementations is closed to this
// package: Nothing, IntValue and StrValue.
type Value interface {
	isValue()
	Type() Type
	String() string
}

type Type int

const (
	TypeNothing Type = iota
	TypeInt
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeNothing:
		return "Nothing"
	case TypeInt:
		return "Int"
	case TypeString:
		return "String"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

type NothingValue struct{}

var Nothing = NothingValue{}

func (NothingValue) isValue()       {}
func (NothingValue) Type() Type     { return TypeNothing }
func (NothingValue) String() string { return "Nothing" }

type IntValue int64

func (IntValue) isValue()   {}
func (IntValue) Type() Type { return TypeInt }
func (i IntValue) String() string {
	return "Int(" + strconv.FormatInt(int64(i), 10) + ")"
}

type StrValue string

func (StrValue) isValue()   {}
func (StrValue) Type() Type { return TypeString }
func (s StrValue) String() string {
	return "String(" + strconv.Quote(string(s)) + ")"
}

// FormatValue formats a Value for display, without the variant tag.
func FormatValue(v Value) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case NothingValue:
		return "Nothing"
	case IntValue:
		return strconv.FormatInt(int64(val), 10)
	case StrValue:
		return strconv.Quote(string(val))
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

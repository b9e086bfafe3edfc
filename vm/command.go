package vm

import "fmt"

// Command is one parsed instruction. Name is set for SETVAR, GETVAR and
// PUSHVAR; Value is set for SETVAR and PUSH.
type Command struct {
	Code  Opcode
	Name  string
	Value Value
}

func (c Command) String() string {
	switch c.Code {
	case SETVAR:
		return fmt.Sprintf("%s %s %s", c.Code, c.Name, c.Value)
	case GETVAR, PUSHVAR:
		return fmt.Sprintf("%s %s", c.Code, c.Name)
	case PUSH:
		return fmt.Sprintf("%s %s", c.Code, c.Value)
	default:
		return c.Code.String()
	}
}

func SetVar(name string, v Value) Command {
	return Command{Code: SETVAR, Name: name, Value: v}
}

func GetVar(name string) Command {
	return Command{Code: GETVAR, Name: name}
}

func PushVar(name string) Command {
	return Command{Code: PUSHVAR, Name: name}
}

func Push(v Value) Command {
	return Command{Code: PUSH, Value: v}
}

func Pop() Command {
	return Command{Code: POP}
}

func Add() Command {
	return Command{Code: ADD}
}

package vm

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParsePath reads and parses the script at path.
func ParsePath(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(path, f)
}

func ParseReader(name string, r io.Reader) (*Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cmds, err := Parse(string(b))
	if err != nil {
		return nil, err
	}
	return &Program{File: name, Commands: cmds}, nil
}

// Parse converts script text into commands, one per non-empty line. The
// first malformed line aborts the parse.
func Parse(text string) ([]Command, error) {
	var out []Command
	for _, line := range strings.Split(text, "\n") {
		cmd, ok, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, cmd)
	}
	return out, nil
}

// ParseLine parses a single line. ok is false for a line with no tokens.
func ParseLine(line string) (cmd Command, ok bool, err error) {
	toks := strings.FieldsFunc(line, isASCIISpace)
	if len(toks) == 0 {
		return Command{}, false, nil
	}
	code, found := LookupKeyword(toks[0])
	if !found {
		return Command{}, false, newUnknownCommand(toks[0])
	}
	if n := arity[code]; n != 0 && len(toks) != n {
		return Command{}, false, ErrMismatchNumParams
	}
	switch code {
	case SETVAR:
		v, err := ParseValue(toks[2])
		if err != nil {
			return Command{}, false, err
		}
		return SetVar(toks[1], v), true, nil
	case GETVAR:
		return GetVar(toks[1]), true, nil
	case PUSHVAR:
		return PushVar(toks[1]), true, nil
	case PUSH:
		v, err := ParseValue(toks[1])
		if err != nil {
			return Command{}, false, err
		}
		return Push(v), true, nil
	case POP, ADD:
		if len(toks) > 1 {
			log.Trace().Str("command", toks[0]).Strs("ignored", toks[1:]).Msg("Parse: ignoring extra operands")
		}
		return Command{Code: code}, true, nil
	}
	panic("unhandled opcode " + code.String())
}

// ParseValue reads a literal: a double-quoted string taken verbatim between
// the quotes, or a signed 64-bit decimal integer.
func ParseValue(tok string) (Value, error) {
	if len(tok) > 1 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return StrValue(tok[1 : len(tok)-1]), nil
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, ErrMismatchType
	}
	return IntValue(i), nil
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

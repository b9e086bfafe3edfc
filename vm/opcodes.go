package vm

type Opcode uint32

const (
	// PRE-STACK ... TOS+1 TOS | OP | POST-STACK | OUTPUT
	SETVAR  Opcode = iota // | name = x | |
	GETVAR                // | | | name
	PUSHVAR               // | | name |
	PUSH                  // | | x |
	POP                   // A | | | A
	ADD                   // B A | C = A + B | C |
	OpcodeMax
)

func (o Opcode) String() string {
	switch o {
	case SETVAR:
		return "SETVAR"
	case GETVAR:
		return "GETVAR"
	case PUSHVAR:
		return "PUSHVAR"
	case PUSH:
		return "PUSH"
	case POP:
		return "POP"
	case ADD:
		return "ADD"
	}
	panic("Unnamed opcode")
}

var keywords = map[string]Opcode{
	"set":     SETVAR,
	"get":     GETVAR,
	"pushvar": PUSHVAR,
	"push":    PUSH,
	"pop":     POP,
	"add":     ADD,
}

// arity is the exact token count a line must have, keyword included.
// Zero means the operands are not checked.
var arity = map[Opcode]int{
	SETVAR:  3,
	GETVAR:  2,
	PUSHVAR: 2,
	PUSH:    2,
	POP:     0,
	ADD:     0,
}

func LookupKeyword(tok string) (Opcode, bool) {
	o, ok := keywords[tok]
	return o, ok
}

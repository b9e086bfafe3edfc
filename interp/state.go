package interp

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/dgryski/go-farm"
	"github.com/shamaton/msgpack/v2"
	"github.com/timewinder-dev/stacklang/vm"
)

// State is everything a script can observe: the variable table, the operand
// stack (top at the end) and the output slot.
type State struct {
	Variables map[string]vm.Value
	Stack     []vm.Value
	Output    vm.Value
}

func NewState() *State {
	return &State{
		Variables: make(map[string]vm.Value),
		Output:    vm.Nothing,
	}
}

func (s *State) Pop() (vm.Value, error) {
	if len(s.Stack) == 0 {
		return nil, vm.ErrEmptyStack
	}
	v := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return v, nil
}

func (s *State) Push(v vm.Value) {
	s.Stack = append(s.Stack, v)
}

func (s *State) StoreVar(key string, value vm.Value) {
	if s.Variables == nil {
		s.Variables = make(map[string]vm.Value)
	}
	s.Variables[key] = value
}

func (s *State) LoadVar(key string) (vm.Value, error) {
	v, ok := s.Variables[key]
	if !ok {
		return nil, vm.NewMissingVariable(key)
	}
	return v, nil
}

func (s *State) Clone() *State {
	out := &State{
		Variables: maps.Clone(s.Variables),
		Stack:     slices.Clone(s.Stack),
		Output:    s.Output,
	}
	if out.Variables == nil {
		out.Variables = make(map[string]vm.Value)
	}
	return out
}

type valueRecord struct {
	Type vm.Type
	Int  int64
	Str  string
}

type bindingRecord struct {
	Name  string
	Value valueRecord
}

// stateRecord is the serialized form of a State. Variables are sorted by
// name so equal states encode to equal bytes.
type stateRecord struct {
	Variables []bindingRecord
	Stack     []valueRecord
	Output    valueRecord
}

func toRecord(v vm.Value) valueRecord {
	switch val := v.(type) {
	case vm.IntValue:
		return valueRecord{Type: vm.TypeInt, Int: int64(val)}
	case vm.StrValue:
		return valueRecord{Type: vm.TypeString, Str: string(val)}
	default:
		return valueRecord{Type: vm.TypeNothing}
	}
}

func fromRecord(r valueRecord) (vm.Value, error) {
	switch r.Type {
	case vm.TypeNothing:
		return vm.Nothing, nil
	case vm.TypeInt:
		return vm.IntValue(r.Int), nil
	case vm.TypeString:
		return vm.StrValue(r.Str), nil
	}
	return nil, fmt.Errorf("unknown value type %d in record", int(r.Type))
}

func (s *State) record() *stateRecord {
	rec := &stateRecord{Output: toRecord(s.Output)}
	for _, k := range slices.Sorted(maps.Keys(s.Variables)) {
		rec.Variables = append(rec.Variables, bindingRecord{Name: k, Value: toRecord(s.Variables[k])})
	}
	for _, v := range s.Stack {
		rec.Stack = append(rec.Stack, toRecord(v))
	}
	return rec
}

func (s *State) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, s.record())
}

func (s *State) Deserialize(r io.Reader) error {
	var rec stateRecord
	if err := msgpack.UnmarshalRead(r, &rec); err != nil {
		return err
	}
	out := NewState()
	for _, b := range rec.Variables {
		v, err := fromRecord(b.Value)
		if err != nil {
			return fmt.Errorf("variable %s: %w", b.Name, err)
		}
		out.Variables[b.Name] = v
	}
	for i, rv := range rec.Stack {
		v, err := fromRecord(rv)
		if err != nil {
			return fmt.Errorf("stack entry %d: %w", i, err)
		}
		out.Stack = append(out.Stack, v)
	}
	v, err := fromRecord(rec.Output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	out.Output = v
	*s = *out
	return nil
}

type Hash uint64

// Hash fingerprints the serialized state.
func (s *State) Hash() (Hash, error) {
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return 0, err
	}
	return Hash(farm.Hash64(buf.Bytes())), nil
}

// PrettyPrint returns a formatted string representation of the State
func (s *State) PrettyPrint() string {
	var b strings.Builder
	b.WriteString("Variables:\n")
	if len(s.Variables) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, k := range slices.Sorted(maps.Keys(s.Variables)) {
		fmt.Fprintf(&b, "  %s = %s\n", k, vm.FormatValue(s.Variables[k]))
	}
	b.WriteString("Stack (bottom to top):\n")
	if len(s.Stack) == 0 {
		b.WriteString("  (empty)\n")
	}
	for i, v := range s.Stack {
		fmt.Fprintf(&b, "  %d: %s\n", i, vm.FormatValue(v))
	}
	fmt.Fprintf(&b, "Output: %s\n", s.Output)
	return b.String()
}

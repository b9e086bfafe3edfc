package interp

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/stacklang/vm"
)

// Step executes a single command against s. On error the state keeps any
// mutation made before the failure point.
func Step(s *State, cmd vm.Command) error {
	log.Trace().
		Str("opcode", cmd.Code.String()).
		Str("name", cmd.Name).
		Interface("arg", cmd.Value).
		Int("stack_depth", len(s.Stack)).
		Msg("Step: executing command")

	switch cmd.Code {
	case vm.SETVAR:
		s.StoreVar(cmd.Name, cmd.Value)
		log.Trace().Str("variable", cmd.Name).Interface("value", cmd.Value).Msg("  SETVAR")
	case vm.GETVAR:
		v, err := s.LoadVar(cmd.Name)
		if err != nil {
			log.Trace().Str("variable", cmd.Name).Err(err).Msg("  GETVAR: error")
			return err
		}
		s.Output = v
		log.Trace().Str("variable", cmd.Name).Interface("value", v).Msg("  GETVAR")
	case vm.PUSHVAR:
		v, err := s.LoadVar(cmd.Name)
		if err != nil {
			log.Trace().Str("variable", cmd.Name).Err(err).Msg("  PUSHVAR: error")
			return err
		}
		s.Push(v)
		log.Trace().Str("variable", cmd.Name).Interface("value", v).Interface("stack", s.Stack).Msg("  PUSHVAR")
	case vm.PUSH:
		s.Push(cmd.Value)
		log.Trace().Interface("value", cmd.Value).Interface("stack", s.Stack).Msg("  PUSH")
	case vm.POP:
		v, err := s.Pop()
		if err != nil {
			log.Trace().Err(err).Msg("  POP: error")
			return err
		}
		s.Output = v
		log.Trace().Interface("value", v).Interface("stack", s.Stack).Msg("  POP")
	case vm.ADD:
		a, err := s.Pop()
		if err != nil {
			log.Trace().Err(err).Msg("  ADD: error")
			return err
		}
		b, err := s.Pop()
		if err != nil {
			log.Trace().Interface("a", a).Err(err).Msg("  ADD: error")
			return err
		}
		v, err := add(a, b)
		if err != nil {
			log.Trace().Interface("a", a).Interface("b", b).Err(err).Msg("  ADD: error")
			return err
		}
		s.Push(v)
		log.Trace().Interface("a", a).Interface("b", b).Interface("result", v).Interface("stack", s.Stack).Msg("  ADD")
	default:
		return fmt.Errorf("unhandled opcode %d", cmd.Code)
	}
	return nil
}

// add combines the first popped value a with the second popped value b.
func add(a, b vm.Value) (vm.Value, error) {
	switch av := a.(type) {
	case vm.IntValue:
		bv, ok := b.(vm.IntValue)
		if !ok {
			return nil, vm.ErrMismatchType
		}
		if (bv > 0 && av > math.MaxInt64-bv) || (bv < 0 && av < math.MinInt64-bv) {
			return nil, vm.ErrIntegerOverflow
		}
		return av + bv, nil
	case vm.StrValue:
		bv, ok := b.(vm.StrValue)
		if !ok {
			return nil, vm.ErrMismatchType
		}
		return av + bv, nil
	}
	return nil, vm.ErrMismatchType
}

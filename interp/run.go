package interp

import (
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/stacklang/vm"
)

// An Evaluator owns one State for its lifetime. Variables and the stack
// survive across calls to Evaluate; the output slot does not.
type Evaluator struct {
	State *State
}

func NewEvaluator() *Evaluator {
	return &Evaluator{State: NewState()}
}

// Evaluate runs cmds in order and returns the output slot. Execution stops at
// the first failing command and its error is returned instead.
func (e *Evaluator) Evaluate(cmds []vm.Command) (vm.Value, error) {
	e.State.Output = vm.Nothing
	for i, cmd := range cmds {
		if err := Step(e.State, cmd); err != nil {
			log.Debug().Int("pc", i).Str("command", cmd.String()).Err(err).Msg("Evaluate: command failed")
			return nil, err
		}
	}
	return e.State.Output, nil
}

func (e *Evaluator) Run(prog *vm.Program) (vm.Value, error) {
	log.Debug().Str("file", prog.File).Int("commands", len(prog.Commands)).Msg("Run: starting")
	v, err := e.Evaluate(prog.Commands)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", prog.File).Stringer("result", v).Msg("Run: finished")
	return v, nil
}

// EvalString parses src and evaluates it with a fresh Evaluator.
func EvalString(src string) (vm.Value, error) {
	cmds, err := vm.Parse(src)
	if err != nil {
		return nil, err
	}
	return NewEvaluator().Evaluate(cmds)
}

package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/stacklang/vm"
)

func TestSetThenGet(t *testing.T) {
	v, err := EvalString("set x 5\nget x")
	require.NoError(t, err)
	require.Equal(t, vm.IntValue(5), v)
}

func TestGetMissing(t *testing.T) {
	_, err := EvalString("get y")
	require.Equal(t, &vm.Error{Kind: vm.MissingVariable, Token: "y"}, err)
}

func TestPopEmpty(t *testing.T) {
	_, err := EvalString("pop")
	require.ErrorIs(t, err, vm.ErrEmptyStack)
}

func TestMixedAdd(t *testing.T) {
	_, err := EvalString("push 1\npush \"a\"\nadd")
	require.ErrorIs(t, err, vm.ErrMismatchType)
}

func TestEmptyScript(t *testing.T) {
	v, err := EvalString("")
	require.NoError(t, err)
	require.Equal(t, vm.Nothing, v)

	v, err = EvalString("\n   \n")
	require.NoError(t, err)
	require.Equal(t, vm.Nothing, v)
}

func TestAddOperandOrder(t *testing.T) {
	v, err := EvalString("push \"a\"\npush \"b\"\nadd\npop")
	require.NoError(t, err)
	require.Equal(t, vm.StrValue("ba"), v)
}

func TestAddDoesNotTouchOutput(t *testing.T) {
	v, err := EvalString("push 1\npush 2\nadd")
	require.NoError(t, err)
	require.Equal(t, vm.Nothing, v)
}

func TestAddWithNothingOperand(t *testing.T) {
	e := NewEvaluator()
	_, err := e.Evaluate([]vm.Command{vm.Push(vm.Nothing), vm.Push(vm.Nothing), vm.Add()})
	require.ErrorIs(t, err, vm.ErrMismatchType)

	e = NewEvaluator()
	_, err = e.Evaluate([]vm.Command{vm.Push(vm.IntValue(1)), vm.Push(vm.Nothing), vm.Add()})
	require.ErrorIs(t, err, vm.ErrMismatchType)
	require.Empty(t, e.State.Stack)
}

func TestAddOverflow(t *testing.T) {
	_, err := EvalString("push 9223372036854775807\npush 1\nadd")
	require.ErrorIs(t, err, vm.ErrIntegerOverflow)

	_, err = EvalString("push -9223372036854775808\npush -1\nadd")
	require.ErrorIs(t, err, vm.ErrIntegerOverflow)

	v, err := EvalString("push 9223372036854775807\npush -1\nadd\npop")
	require.NoError(t, err)
	require.Equal(t, vm.IntValue(9223372036854775806), v)
}

func TestAddEmptyStack(t *testing.T) {
	e := NewEvaluator()
	_, err := e.Evaluate([]vm.Command{vm.Add()})
	require.ErrorIs(t, err, vm.ErrEmptyStack)
	require.Empty(t, e.State.Stack)

	// The first operand stays consumed when the second pop fails.
	e = NewEvaluator()
	_, err = e.Evaluate([]vm.Command{vm.Push(vm.IntValue(1)), vm.Add()})
	require.ErrorIs(t, err, vm.ErrEmptyStack)
	require.Empty(t, e.State.Stack)
}

func TestFailFastKeepsPriorMutations(t *testing.T) {
	e := NewEvaluator()
	v, err := e.Evaluate([]vm.Command{
		vm.SetVar("a", vm.IntValue(1)),
		vm.Push(vm.StrValue("s")),
		vm.GetVar("missing"),
		vm.SetVar("b", vm.IntValue(2)),
	})
	require.Nil(t, v)
	require.ErrorIs(t, err, vm.ErrMissingVariable)
	require.Equal(t, map[string]vm.Value{"a": vm.IntValue(1)}, e.State.Variables)
	require.Equal(t, []vm.Value{vm.StrValue("s")}, e.State.Stack)
}

func TestFailedGetLeavesOutput(t *testing.T) {
	e := NewEvaluator()
	_, err := e.Evaluate([]vm.Command{vm.Push(vm.IntValue(7)), vm.Pop(), vm.GetVar("nope")})
	require.Error(t, err)
	require.Equal(t, vm.IntValue(7), e.State.Output)
}

func TestPushVarMissing(t *testing.T) {
	e := NewEvaluator()
	_, err := e.Evaluate([]vm.Command{vm.Push(vm.IntValue(1)), vm.PushVar("x")})
	require.ErrorIs(t, err, &vm.Error{Kind: vm.MissingVariable, Token: "x"})
	require.Equal(t, []vm.Value{vm.IntValue(1)}, e.State.Stack)
}

func TestPushVarCopies(t *testing.T) {
	v, err := EvalString("set x 1\npushvar x\nset x 2\npop")
	require.NoError(t, err)
	require.Equal(t, vm.IntValue(1), v)
}

func TestSetOverwrites(t *testing.T) {
	v, err := EvalString("set x 1\nset x \"two\"\nget x")
	require.NoError(t, err)
	require.Equal(t, vm.StrValue("two"), v)
}

func TestGetDoesNotTouchStack(t *testing.T) {
	e := NewEvaluator()
	v, err := e.Evaluate([]vm.Command{vm.SetVar("x", vm.IntValue(3)), vm.Push(vm.IntValue(9)), vm.GetVar("x")})
	require.NoError(t, err)
	require.Equal(t, vm.IntValue(3), v)
	require.Equal(t, []vm.Value{vm.IntValue(9)}, e.State.Stack)
}

func TestReusedEvaluator(t *testing.T) {
	e := NewEvaluator()
	v, err := e.Evaluate([]vm.Command{vm.SetVar("x", vm.IntValue(1)), vm.Push(vm.IntValue(2)), vm.Pop()})
	require.NoError(t, err)
	require.Equal(t, vm.IntValue(2), v)

	// Variables persist; the output slot starts over.
	v, err = e.Evaluate([]vm.Command{vm.PushVar("x")})
	require.NoError(t, err)
	require.Equal(t, vm.Nothing, v)
	v, err = e.Evaluate([]vm.Command{vm.Pop()})
	require.NoError(t, err)
	require.Equal(t, vm.IntValue(1), v)
}

func TestParseErrorPreventsEvaluation(t *testing.T) {
	_, err := EvalString("set x 1\nfrobnicate 1")
	require.Equal(t, &vm.Error{Kind: vm.UnknownCommand, Token: "frobnicate"}, err)
}

func TestRunProgram(t *testing.T) {
	prog, err := vm.ParsePath("../testdata/examples/pushvar_add.sl")
	require.NoError(t, err)
	v, err := NewEvaluator().Run(prog)
	require.NoError(t, err)
	require.Equal(t, vm.IntValue(42), v)
}

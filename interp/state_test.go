package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/stacklang/vm"
)

func buildState(t *testing.T, src string) *State {
	t.Helper()
	cmds, err := vm.Parse(src)
	require.NoError(t, err)
	e := NewEvaluator()
	_, err = e.Evaluate(cmds)
	require.NoError(t, err)
	return e.State
}

func TestStateSerializeRoundTrip(t *testing.T) {
	s := buildState(t, "set a 1\nset b \"two\"\npush 3\npush \"four\"\npush 5\npop")

	var buf bytes.Buffer
	require.NoError(t, s.Serialize(&buf))

	out := &State{}
	require.NoError(t, out.Deserialize(&buf))
	require.Equal(t, s.Variables, out.Variables)
	require.Equal(t, s.Stack, out.Stack)
	require.Equal(t, vm.IntValue(5), out.Output)
}

func TestStateHash(t *testing.T) {
	a := buildState(t, "set x 1\nset y 2\npush 3")
	b := buildState(t, "set y 2\nset x 1\npush 3")
	c := buildState(t, "set x 1\nset y 2\npush 4")

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	hc, err := c.Hash()
	require.NoError(t, err)

	require.Equal(t, ha, hb)
	require.NotEqual(t, ha, hc)
}

func TestStateClone(t *testing.T) {
	s := buildState(t, "set x 1\npush 2")
	c := s.Clone()
	c.StoreVar("x", vm.IntValue(9))
	c.Push(vm.IntValue(10))

	require.Equal(t, vm.IntValue(1), s.Variables["x"])
	require.Len(t, s.Stack, 1)
	require.Len(t, c.Stack, 2)
}

func TestStatePrettyPrint(t *testing.T) {
	s := buildState(t, "set b \"s\"\nset a 1\npush 2\npush 3\npop")
	require.Equal(t, "Variables:\n  a = 1\n  b = \"s\"\nStack (bottom to top):\n  0: 2\nOutput: Int(3)\n", s.PrettyPrint())

	require.Equal(t, "Variables:\n  (none)\nStack (bottom to top):\n  (empty)\nOutput: Nothing\n", NewState().PrettyPrint())
}

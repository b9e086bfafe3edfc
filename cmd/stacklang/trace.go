package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/stacklang/interp"
	"github.com/timewinder-dev/stacklang/vm"
)

var traceCmd = &cobra.Command{
	Use:   "trace FILE",
	Short: "Step through a script, printing the state before each command",
	Args:  cobra.ExactArgs(1),
	Run:   traceCommand,
}

func traceCommand(cmd *cobra.Command, args []string) {
	prog, err := vm.ParsePath(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't parse")
	}
	trace(prog)
}

func trace(prog *vm.Program) {
	s := interp.NewState()
	for pc := 0; ; pc++ {
		fmt.Println("*******")
		prettyPrint(prog, s, pc)
		inst, err := prog.GetInstruction(pc)
		if err != nil {
			fmt.Println("Finished")
			fmt.Printf("Result: %s\n", s.Output)
			return
		}
		if err := interp.Step(s, inst); err != nil {
			log.Fatal().Err(err).Int("pc", pc).Str("command", inst.String()).Msg("Got err")
		}
	}
}

func prettyPrint(prog *vm.Program, s *interp.State, pc int) {
	fmt.Printf("Stack: %v\n", s.Stack)
	fmt.Printf("Variables: %v\n", s.Variables)
	fmt.Printf("Output: %s\n", s.Output)
	if h, err := s.Hash(); err == nil {
		fmt.Printf("State: 0x%x\n", uint64(h))
	}
	inst, err := prog.GetInstruction(pc)
	if err != nil {
		fmt.Println("End of instructions")
	} else {
		fmt.Printf("NextOp: %03d %s\n", pc, inst)
	}
}

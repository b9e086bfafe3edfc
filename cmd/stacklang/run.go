package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/stacklang/interp"
	"github.com/timewinder-dev/stacklang/vm"
)

var (
	debugFlag bool
	keepGoing bool
)

var runCmd = &cobra.Command{
	Use:   "run [FILE...]",
	Short: "Evaluate each script and print its final value",
	Args:  cobra.ArbitraryArgs,
	Run:   runCommand,
}

func init() {
	runCmd.Flags().BoolVar(&debugFlag, "debug", false, "Print the parsed program and final state to stderr")
	runCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Keep running the remaining files after a script fails")
}

func runCommand(cmd *cobra.Command, args []string) {
	failed := 0
	for _, filename := range args {
		logger := log.With().Str("run", uuid.NewString()).Str("file", filename).Logger()
		src, err := os.ReadFile(filename)
		if err != nil {
			logger.Fatal().Err(err).Msg("Couldn't read script")
		}
		cmds, err := vm.Parse(string(src))
		if err != nil {
			if !keepGoing {
				logger.Fatal().Err(err).Msg("Couldn't parse script")
			}
			logger.Error().Err(err).Msg("Couldn't parse script")
			failed++
			continue
		}
		prog := &vm.Program{File: filename, Commands: cmds}
		if debugFlag {
			prog.DebugPrint(os.Stderr)
		}
		ev := interp.NewEvaluator()
		v, err := ev.Run(prog)
		if debugFlag {
			fmt.Fprint(os.Stderr, ev.State.PrettyPrint())
		}
		if err != nil {
			if !keepGoing {
				logger.Fatal().Err(err).Msg("Error during evaluation")
			}
			logger.Error().Err(err).Msg("Error during evaluation")
			failed++
			continue
		}
		fmt.Println(v)
	}
	if failed > 0 {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("%d of %d scripts failed", failed, len(args)))
		os.Exit(1)
	}
}

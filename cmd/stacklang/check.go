package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/stacklang/suite"
)

var checkCmd = &cobra.Command{
	Use:   "check SUITEFILE",
	Short: "Run a TOML suite of scripts and compare their results",
	Args:  cobra.ExactArgs(1),
	Run:   checkCommand,
}

func checkCommand(cmd *cobra.Command, args []string) {
	s, err := suite.LoadSuiteFromFile(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't load suite")
	}
	rep := s.Run()
	fmt.Fprint(os.Stderr, suite.FormatReport(rep))
	if rep.Failed() > 0 {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, color.Green.Sprint("✓ All cases passed"))
}

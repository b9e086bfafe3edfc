package suite

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/stacklang/interp"
	"github.com/timewinder-dev/stacklang/vm"
)

type Result struct {
	Name   string
	Passed bool
	Want   string
	Got    string
}

type Report struct {
	Path    string
	Results []Result
}

func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Run evaluates every case with a fresh Evaluator, in name order.
func (s *Suite) Run() *Report {
	rep := &Report{Path: s.path}
	for _, name := range slices.Sorted(maps.Keys(s.Cases)) {
		rep.Results = append(rep.Results, s.runCase(name, s.Cases[name]))
	}
	return rep
}

func (s *Suite) runCase(name string, c CaseSpec) Result {
	logger := log.With().Str("run", uuid.NewString()).Str("case", name).Logger()
	res := Result{Name: name, Want: c.want()}

	var prog *vm.Program
	var err error
	if c.File != "" {
		prog, err = vm.ParsePath(c.File)
	} else {
		var cmds []vm.Command
		cmds, err = vm.Parse(c.Script)
		prog = &vm.Program{File: name, Commands: cmds}
	}
	var v vm.Value
	if err == nil {
		v, err = interp.NewEvaluator().Run(prog)
	}

	if err != nil {
		res.Got = describeError(err)
	} else {
		res.Got = v.String()
	}
	res.Passed = res.Got == res.Want
	logger.Debug().Bool("passed", res.Passed).Str("got", res.Got).Str("want", res.Want).Msg("Suite case finished")
	return res
}

func (c CaseSpec) want() string {
	if c.Error != "" {
		return "error " + c.Error
	}
	if c.Expect == "" {
		return vm.Nothing.String()
	}
	return c.Expect
}

func describeError(err error) string {
	var verr *vm.Error
	if errors.As(err, &verr) {
		return "error " + verr.Kind.String()
	}
	return fmt.Sprintf("error %v", err)
}

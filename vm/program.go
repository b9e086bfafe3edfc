package vm

import (
	"errors"
	"fmt"
	"io"
)

type Program struct {
	File     string
	Commands []Command
}

func (p *Program) DebugPrint(w io.Writer) {
	fmt.Fprintf(w, "*** %s\n", p.File)
	for i, c := range p.Commands {
		fmt.Fprintf(w, "  %03d: %s\n", i, c)
	}
}

var ErrEndOfCode = errors.New("End of code block")

func (p *Program) GetInstruction(pc int) (Command, error) {
	if pc < 0 || len(p.Commands) <= pc {
		return Command{}, ErrEndOfCode
	}
	return p.Commands[pc], nil
}

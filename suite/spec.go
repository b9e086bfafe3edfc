package suite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/timewinder-dev/stacklang/vm"
)

// Suite is a TOML manifest of scripts and the outcome each should have.
type Suite struct {
	Suite SuiteDetails        `toml:"suite"`
	Cases map[string]CaseSpec `toml:"cases,omitempty"`

	path string
}

type SuiteDetails struct {
	Dir string `toml:"dir,omitempty"`
}

// CaseSpec names a script by file or inline text. Expect is the debug form of
// the final value, e.g. Int(3); Error is an error kind name, e.g. EmptyStack.
type CaseSpec struct {
	File   string `toml:"file,omitempty"`
	Script string `toml:"script,omitempty"`
	Expect string `toml:"expect,omitempty"`
	Error  string `toml:"error,omitempty"`
}

func parseSuite(f io.Reader) (*Suite, error) {
	var out Suite
	_, err := toml.NewDecoder(f).Decode(&out)
	return &out, err
}

func LoadSuiteFromFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := parseSuite(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	s.path = path
	filedir := filepath.Dir(path)
	s.Suite.Dir = filepath.Clean(filepath.Join(filedir, s.Suite.Dir))
	for name, c := range s.Cases {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("case %s: %w", name, err)
		}
		if c.File != "" {
			c.File = filepath.Join(s.Suite.Dir, c.File)
			s.Cases[name] = c
		}
	}
	return s, nil
}

func (c CaseSpec) validate() error {
	if c.File == "" && c.Script == "" {
		return errors.New("one of file or script is required")
	}
	if c.File != "" && c.Script != "" {
		return errors.New("file and script are mutually exclusive")
	}
	if c.Expect != "" && c.Error != "" {
		return errors.New("expect and error are mutually exclusive")
	}
	if c.Error != "" {
		if _, ok := vm.ParseErrorKind(c.Error); !ok {
			return fmt.Errorf("unknown error kind %q", c.Error)
		}
	}
	return nil
}

// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"github.com/rnharmening/DupGeneIdentifier/internal/cliutil"
)

// ErrConfig marks input/output list problems detected before any file is touched.
var ErrConfig = errors.New("configuration error")

// Common holds CLI fields shared by blast-filter and identical-genes.
type Common struct {
	// Files, matched by list position
	Inputs  []string
	Outputs []string

	// Run
	KeepGoing bool

	// Misc
	Quiet   bool
	Version bool
}

// ListFlags are the flags taking one or more values ("-i a.tsv b.tsv").
var ListFlags = map[string]bool{"i": true, "input": true, "o": true, "output": true}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	in := &cliutil.ListValue{Dst: &c.Inputs}
	out := &cliutil.ListValue{Dst: &c.Outputs}
	fs.Var(in, "input", "input table(s), one or more or '-' for STDIN")
	fs.Var(in, "i", "alias of --input")
	fs.Var(out, "output", "output file(s), same count as --input, or '-' for STDOUT")
	fs.Var(out, "o", "alias of --output")

	fs.BoolVar(&c.KeepGoing, "keep-going", false, "continue with the next file after a per-file error [false]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress INFO/WARN messages [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse rejects stray positionals, then runs shared validation.
func AfterParse(c *Common, posArgs []string) error {
	if len(posArgs) > 0 {
		return fmt.Errorf("%w: unexpected argument %q (pass files with -i/-o)", ErrConfig, posArgs[0])
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if len(c.Inputs) == 0 || len(c.Outputs) == 0 {
		return fmt.Errorf("%w: -i and -o have to be specified (same number of elements)", ErrConfig)
	}
	if len(c.Inputs) != len(c.Outputs) {
		return fmt.Errorf("%w: the number of elements passed to --input (%d) and --output (%d) has to be the same",
			ErrConfig, len(c.Inputs), len(c.Outputs))
	}
	stdout := 0
	for _, o := range c.Outputs {
		if o == "-" {
			stdout++
		}
	}
	if stdout > 1 {
		return fmt.Errorf("%w: at most one --output may be '-'", ErrConfig)
	}
	return nil
}

package resolvecli

import (
	"flag"
	"fmt"
	"io"

	"github.com/rnharmening/DupGeneIdentifier/internal/cli"
	"github.com/rnharmening/DupGeneIdentifier/internal/clibase"
	"github.com/rnharmening/DupGeneIdentifier/internal/cliutil"
)

type Options struct {
	clibase.Common
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "find identical genes from duplicate tables", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -i dups.tsv [more.tsv...] -o delete.txt [more.txt...]\n", name)

		_, _ = fmt.Fprintln(out, "\nInput: tab-separated with header; needs qaccver, saccver, pident, qcovs.")
		_, _ = fmt.Fprintln(out, "Output: accessions to delete, one per line, sorted. Of every pair seen")
		_, _ = fmt.Fprintln(out, "at 100% pident and qcovs in both directions the greater accession is listed.")
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("identical-genes"), nil) }

// PrintExamples prints a tiny, focused quickstart for identical-genes.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "identical-genes", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Turn filtered duplicate tables into deletion lists.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  blast-filter -i s1.tsv s2.tsv -o s1.dups.tsv s2.dups.tsv")
		_, _ = fmt.Fprintln(w, "  identical-genes -i s1.dups.tsv s2.dups.tsv -o s1.delete.txt s2.delete.txt")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv, clibase.ListFlags)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(&c, posArgs); err != nil {
		return o, err
	}
	o.Common = c
	return o, nil
}

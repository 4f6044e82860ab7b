package filtercli

import (
	"flag"
	"fmt"
	"io"

	"github.com/rnharmening/DupGeneIdentifier/internal/cli"
	"github.com/rnharmening/DupGeneIdentifier/internal/clibase"
	"github.com/rnharmening/DupGeneIdentifier/internal/cliutil"
	"github.com/rnharmening/DupGeneIdentifier/internal/config"
	"github.com/rnharmening/DupGeneIdentifier/internal/filter"
)

type Options struct {
	clibase.Common

	// Filter-specific
	Thresholds filter.Thresholds
	ConfigFile string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "find duplicated genes based on a BLAST output table", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -i hits.tsv [more.tsv...] -o dups.tsv [more.dups.tsv...]\n", name)

		_, _ = fmt.Fprintln(out, "\nInput columns (tab-separated, no header):")
		_, _ = fmt.Fprintln(out, "  qaccver saccver pident length mismatch gapopen qstart qend sstart send")
		_, _ = fmt.Fprintln(out, "  evalue bitscore qframe sframe qlen slen qcovs qcovhsp")

		_, _ = fmt.Fprintln(out, "\nThresholds:")
		_, _ = fmt.Fprintf(out, "      --pident int            Keep hits with pident > N [%s]\n", def("pident"))
		_, _ = fmt.Fprintf(out, "      --qcovs int             Keep hits with qcovs > N [%s]\n", def("qcovs"))
		_, _ = fmt.Fprintln(out, "      --config file           TOML file with [filter] pident/qcovs; flags win")
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("blast-filter"), nil) }

// PrintExamples prints a tiny, focused quickstart for blast-filter.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "blast-filter", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Keep confident, non-self hits from all-vs-all BLAST tables.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  blastn -query genes.fna -subject genes.fna \\")
		_, _ = fmt.Fprintln(w, "    -outfmt '6 qaccver saccver pident length mismatch gapopen qstart qend sstart send evalue bitscore qframe sframe qlen slen qcovs qcovhsp' \\")
		_, _ = fmt.Fprintln(w, "    > hits.tsv")
		_, _ = fmt.Fprintln(w, "  blast-filter --pident 90 --qcovs 80 -i hits.tsv -o dups.tsv")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	clibase.Register(fs, &c)

	// Filter flags
	fs.IntVar(&o.Thresholds.PIdent, "pident", filter.DefaultPIdent, "keep hits with pident > N")
	fs.IntVar(&o.Thresholds.QCovs, "qcovs", filter.DefaultQCovs, "keep hits with qcovs > N")
	fs.StringVar(&o.ConfigFile, "config", "", "TOML threshold file")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
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

	if o.ConfigFile != "" {
		if err := applyConfig(fs, &o); err != nil {
			return o, err
		}
	}
	if err := clibase.AfterParse(&c, posArgs); err != nil {
		return o, err
	}
	if err := checkPercent("--pident", o.Thresholds.PIdent); err != nil {
		return o, err
	}
	if err := checkPercent("--qcovs", o.Thresholds.QCovs); err != nil {
		return o, err
	}

	o.Common = c
	return o, nil
}

// applyConfig fills thresholds from the TOML file unless the flag was given.
func applyConfig(fs *flag.FlagSet, o *Options) error {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return fmt.Errorf("%w: %v", clibase.ErrConfig, err)
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if v := cfg.Filter.PIdent; v != nil && !set["pident"] {
		o.Thresholds.PIdent = *v
	}
	if v := cfg.Filter.QCovs; v != nil && !set["qcovs"] {
		o.Thresholds.QCovs = *v
	}
	return nil
}

func checkPercent(name string, v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %d", clibase.ErrConfig, name, v)
	}
	return nil
}

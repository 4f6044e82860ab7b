// internal/filterapp/app.go
package filterapp

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rnharmening/DupGeneIdentifier/internal/appcore"
	"github.com/rnharmening/DupGeneIdentifier/internal/blast"
	"github.com/rnharmening/DupGeneIdentifier/internal/clibase"
	"github.com/rnharmening/DupGeneIdentifier/internal/filter"
	"github.com/rnharmening/DupGeneIdentifier/internal/filtercli"
	"github.com/rnharmening/DupGeneIdentifier/internal/version"
	"github.com/rnharmening/DupGeneIdentifier/internal/writers"
)

const name = "blast-filter"

func Run(argv []string, stdout, stderr io.Writer) int {
	fs := filtercli.NewFlagSet(name)
	fs.SetOutput(io.Discard) // silence default flag pkg

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = filtercli.ParseArgs(fs, []string{"-h"})
		return appcore.Usage(fs, stdout, stderr, appcore.ExitOK)
	}

	opts, err := filtercli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			return appcore.Print(stdout, stderr, appcore.ExitOK, filtercli.PrintExamples)
		case errors.Is(err, flag.ErrHelp):
			return appcore.Usage(fs, stdout, stderr, appcore.ExitOK)
		}
		fmt.Fprintln(stderr, err)
		return appcore.Usage(fs, stdout, stderr, appcore.ExitUsage)
	}
	if opts.Version {
		return appcore.Print(stdout, stderr, appcore.ExitOK, func(w io.Writer) {
			fmt.Fprintf(w, "%s version %s\n", name, version.Version)
		})
	}

	th := opts.Thresholds
	return appcore.Run(stdout, stderr, opts.Common, func(in string) (func(io.Writer) error, string, error) {
		recs, err := blast.ReadRaw(in)
		if err != nil {
			return nil, "", err
		}
		kept := filter.Apply(recs, th)
		summary := fmt.Sprintf("%d of %d rows kept (pident > %d, qcovs > %d)", len(kept), len(recs), th.PIdent, th.QCovs)
		return func(w io.Writer) error { return writers.WriteAlignmentTSV(w, kept) }, summary, nil
	})
}

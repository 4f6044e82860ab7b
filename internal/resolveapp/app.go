// internal/resolveapp/app.go
package resolveapp

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rnharmening/DupGeneIdentifier/internal/appcore"
	"github.com/rnharmening/DupGeneIdentifier/internal/blast"
	"github.com/rnharmening/DupGeneIdentifier/internal/clibase"
	"github.com/rnharmening/DupGeneIdentifier/internal/cmdutil"
	"github.com/rnharmening/DupGeneIdentifier/internal/dedupe"
	"github.com/rnharmening/DupGeneIdentifier/internal/resolvecli"
	"github.com/rnharmening/DupGeneIdentifier/internal/version"
	"github.com/rnharmening/DupGeneIdentifier/internal/writers"
)

const name = "identical-genes"

func Run(argv []string, stdout, stderr io.Writer) int {
	fs := resolvecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = resolvecli.ParseArgs(fs, []string{"-h"})
		return appcore.Usage(fs, stdout, stderr, appcore.ExitOK)
	}

	opts, err := resolvecli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			return appcore.Print(stdout, stderr, appcore.ExitOK, resolvecli.PrintExamples)
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

	return appcore.Run(stdout, stderr, opts.Common, func(in string) (func(io.Writer) error, string, error) {
		tb, err := blast.ReadTable(in)
		if err != nil {
			return nil, "", err
		}
		res, err := dedupe.ResolveTable(tb)
		if err != nil {
			return nil, "", err
		}
		if res.OneWay > 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: %d exact hit(s) lack the reverse hit and were not used",
				blast.DisplayName(in), res.OneWay)
		}
		summary := fmt.Sprintf("%d confirmed pair(s), %d accession(s) to delete", res.Confirmed, len(res.Delete))
		return func(w io.Writer) error { return writers.WriteDeletionList(w, res.Delete) }, summary, nil
	})
}

// internal/appcore/core.go
package appcore

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"github.com/rnharmening/DupGeneIdentifier/internal/blast"
	"github.com/rnharmening/DupGeneIdentifier/internal/clibase"
	"github.com/rnharmening/DupGeneIdentifier/internal/cmdutil"
	"github.com/rnharmening/DupGeneIdentifier/internal/writers"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1 // a file could not be transformed
	ExitUsage  = 2 // bad flags or configuration; nothing touched
	ExitWrite  = 3 // stdout could not be flushed
)

// Job loads and transforms one input completely. The returned write func
// emits the result; summary is logged at INFO after a successful write.
type Job func(input string) (write func(io.Writer) error, summary string, err error)

// Run processes c.Inputs[i] → c.Outputs[i] in order. The first failing file
// stops the run unless c.KeepGoing is set; failed files get no output.
func Run(stdout, stderr io.Writer, c clibase.Common, job Job) int {
	outw := bufio.NewWriter(stdout)
	failed := 0

	for i, in := range c.Inputs {
		out := c.Outputs[i]
		write, summary, err := job(in)
		if err == nil {
			err = writers.WriteFile(out, outw, write)
		}
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		if err != nil {
			failed++
			cmdutil.Errorf(stderr, "%v", err)
			if !c.KeepGoing {
				break
			}
			continue
		}
		cmdutil.Infof(stderr, c.Quiet, "%s → %s: %s", blast.DisplayName(in), outName(out), summary)
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitWrite
	}
	if failed > 0 {
		if c.KeepGoing {
			cmdutil.Warnf(stderr, c.Quiet, "%d of %d file(s) failed", failed, len(c.Inputs))
		}
		return ExitFailed
	}
	return ExitOK
}

func outName(path string) string {
	if path == "-" {
		return "<stdout>"
	}
	return path
}

// Usage prints fs usage to stdout and returns code (ExitWrite if printing fails).
func Usage(fs *flag.FlagSet, stdout, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(stdout)
	fs.SetOutput(outw)
	fs.Usage()
	fs.SetOutput(io.Discard)
	return flush(outw, stderr, code)
}

// Print runs emit against buffered stdout (version, examples) and returns code.
func Print(stdout, stderr io.Writer, code int, emit func(io.Writer)) int {
	outw := bufio.NewWriter(stdout)
	emit(outw)
	return flush(outw, stderr, code)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitWrite
	}
	return code
}

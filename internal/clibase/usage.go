// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"github.com/rnharmening/DupGeneIdentifier/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, tool flags).
func UsageCommon(fs *flag.FlagSet, name, summary string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, summary)
		fmt.Fprintln(out, "Author:  Robin Harmening")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nFiles:")
		fmt.Fprintln(out, "  -i, --input file...         Input table(s), or '-' for STDIN [*]")
		fmt.Fprintln(out, "  -o, --output file...        Output file(s), matched to --input by position, or '-' [*]")
		fmt.Fprintf(out, "      --keep-going            Continue after a per-file error [%s]\n", def("keep-going"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress INFO/WARN messages [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

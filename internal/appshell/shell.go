package appshell

import (
	"io"
	"os"
)

// Main runs an app entrypoint against the process stdio and exits with its code.
// No arguments means help.
func Main(run func([]string, io.Writer, io.Writer) int) {
	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	os.Exit(run(argv, os.Stdout, os.Stderr))
}

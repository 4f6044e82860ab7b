// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// flagName strips leading dashes and any "=value" suffix.
func flagName(arg string) (name string, hasValue bool) {
	name = strings.TrimLeft(arg, "-")
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		return name[:eq], true
	}
	return name, false
}

func isFlag(arg string) bool { return len(arg) > 1 && arg[0] == '-' }

// SplitFlagsAndPositionals separates flag-like args from positionals and
// expands multi-value list flags so the flag package can parse them:
//
//	-i a.tsv b.tsv -o x.tsv y.tsv  →  -i a.tsv -i b.tsv -o x.tsv -o y.tsv
//
// list holds the names (without dashes) of flags taking one or more values.
// A list flag consumes every following token up to the next flag; a bare
// "-" is kept as a value (stdin/stdout). "--x=y" forms take exactly one value.
// Everything after "--" is positional. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string, list map[string]bool) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if !isFlag(arg) {
			posArgs = append(posArgs, arg)
			continue
		}
		name, inline := flagName(arg)
		flagArgs = append(flagArgs, arg)
		switch {
		case inline || boolFlags[name]:
		case list[name]:
			n := 0
			for i+1 < len(argv) && !isFlag(argv[i+1]) {
				if n > 0 {
					flagArgs = append(flagArgs, arg)
				}
				flagArgs = append(flagArgs, argv[i+1])
				n++
				i++
			}
		case i+1 < len(argv):
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}

// ListValue appends each value to a *[]string (repeatable/list flags).
type ListValue struct{ Dst *[]string }

func (s *ListValue) String() string {
	if s == nil || s.Dst == nil {
		return ""
	}
	return strings.Join(*s.Dst, " ")
}

func (s *ListValue) Set(v string) error {
	*s.Dst = append(*s.Dst, v)
	return nil
}

package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnfQuiet(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, true, "x %d", 1)
	Infof(&buf, true, "y")
	if buf.Len() != 0 {
		t.Fatalf("quiet should suppress output, got %q", buf.String())
	}
	Warnf(&buf, false, "x %d", 1)
	Infof(&buf, false, "y")
	Errorf(&buf, "z")
	if got, want := buf.String(), "WARN: x 1\nINFO: y\nerror: z\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

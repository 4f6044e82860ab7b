package appcore

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnharmening/DupGeneIdentifier/internal/clibase"
)

// echoJob writes the input name; inputs containing "bad" fail.
func echoJob(in string) (func(io.Writer) error, string, error) {
	if strings.Contains(in, "bad") {
		return nil, "", errors.New("cannot read " + in)
	}
	return func(w io.Writer) error {
		_, err := io.WriteString(w, in+"\n")
		return err
	}, "ok", nil
}

func TestRun_WritesEachPair(t *testing.T) {
	dir := t.TempDir()
	x, y := filepath.Join(dir, "x"), filepath.Join(dir, "y")
	var out, errb bytes.Buffer
	code := Run(&out, &errb, clibase.Common{Inputs: []string{"a", "b"}, Outputs: []string{x, y}}, echoJob)
	require.Equal(t, ExitOK, code, errb.String())

	bx, _ := os.ReadFile(x)
	by, _ := os.ReadFile(y)
	assert.Equal(t, "a\n", string(bx))
	assert.Equal(t, "b\n", string(by))
	assert.Contains(t, errb.String(), "INFO: a → "+x+": ok")
}

func TestRun_StopsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	x, y, z := filepath.Join(dir, "x"), filepath.Join(dir, "y"), filepath.Join(dir, "z")
	var out, errb bytes.Buffer
	code := Run(&out, &errb, clibase.Common{Inputs: []string{"a", "bad", "c"}, Outputs: []string{x, y, z}}, echoJob)
	assert.Equal(t, ExitFailed, code)
	assert.FileExists(t, x)
	assert.NoFileExists(t, y)
	assert.NoFileExists(t, z, "later files not processed without --keep-going")
	assert.Contains(t, errb.String(), "cannot read bad")
}

func TestRun_KeepGoing(t *testing.T) {
	dir := t.TempDir()
	x, y, z := filepath.Join(dir, "x"), filepath.Join(dir, "y"), filepath.Join(dir, "z")
	var out, errb bytes.Buffer
	c := clibase.Common{Inputs: []string{"a", "bad", "c"}, Outputs: []string{x, y, z}, KeepGoing: true}
	code := Run(&out, &errb, c, echoJob)
	assert.Equal(t, ExitFailed, code)
	assert.FileExists(t, x)
	assert.NoFileExists(t, y)
	assert.FileExists(t, z)
	assert.Contains(t, errb.String(), "WARN: 1 of 3 file(s) failed")
}

func TestRun_StdoutAndQuiet(t *testing.T) {
	var out, errb bytes.Buffer
	code := Run(&out, &errb, clibase.Common{Inputs: []string{"a"}, Outputs: []string{"-"}, Quiet: true}, echoJob)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "a\n", out.String())
	assert.Empty(t, errb.String())
}

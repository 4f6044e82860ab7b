package writers

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnharmening/DupGeneIdentifier/internal/blast"
)

func TestWriteAlignmentTSV_HeaderAndRawFields(t *testing.T) {
	fields := []string{"A", "B", "100.000", "300", "0", "0", "1", "300", "1", "300", "0.0", "555", "1", "1", "300", "300", "100", "100"}
	var buf bytes.Buffer
	require.NoError(t, WriteAlignmentTSV(&buf, []blast.Record{{Fields: fields}}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(blast.Columns, "\t"), lines[0])
	assert.Len(t, strings.Split(lines[0], "\t"), blast.NumColumns)
	assert.Equal(t, strings.Join(fields, "\t"), lines[1])
}

func TestWriteAlignmentTSV_EmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAlignmentTSV(&buf, nil))
	assert.Equal(t, strings.Join(blast.Columns, "\t")+"\n", buf.String())
}

func TestWriteDeletionList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDeletionList(&buf, []string{"B", "D"}))
	assert.Equal(t, "B\nD\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteDeletionList(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteFile_Atomic(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteFile(p, io.Discard, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok\n")
		return err
	}))
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", string(got))

	boom := errors.New("boom")
	err = WriteFile(filepath.Join(dir, "fail.txt"), io.Discard, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fail.txt")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no partial or temp file left behind")
	assert.Equal(t, "out.txt", entries[0].Name())
}

func TestWriteFile_Stdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFile("-", &buf, func(w io.Writer) error {
		return WriteDeletionList(w, []string{"X"})
	}))
	assert.Equal(t, "X\n", buf.String())
}

func TestWriteFile_UnwritableDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := WriteFile(p, io.Discard, func(io.Writer) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), p)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("x")))
}

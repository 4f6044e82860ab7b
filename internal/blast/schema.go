// Package blast holds the fixed tabular (-outfmt 6) alignment schema and
// readers for raw headerless and headered alignment tables.
package blast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrSchema marks a table whose shape does not match what the reader expects.
	ErrSchema = errors.New("schema error")
	// ErrData marks a value that cannot be interpreted (e.g. non-numeric pident).
	ErrData = errors.New("data error")
)

// Canonical column names, positional.
const (
	ColQAccVer  = "qaccver"
	ColSAccVer  = "saccver"
	ColPIdent   = "pident"
	ColLength   = "length"
	ColMismatch = "mismatch"
	ColGapOpen  = "gapopen"
	ColQStart   = "qstart"
	ColQEnd     = "qend"
	ColSStart   = "sstart"
	ColSEnd     = "send"
	ColEValue   = "evalue"
	ColBitScore = "bitscore"
	ColQFrame   = "qframe"
	ColSFrame   = "sframe"
	ColQLen     = "qlen"
	ColSLen     = "slen"
	ColQCovs    = "qcovs"
	ColQCovHSP  = "qcovhsp"
)

// Columns is the ordered schema of a raw alignment row.
var Columns = []string{
	ColQAccVer, ColSAccVer, ColPIdent, ColLength, ColMismatch, ColGapOpen,
	ColQStart, ColQEnd, ColSStart, ColSEnd, ColEValue, ColBitScore,
	ColQFrame, ColSFrame, ColQLen, ColSLen, ColQCovs, ColQCovHSP,
}

// NumColumns is len(Columns).
const NumColumns = 18

// positions in Columns
const (
	idxQAccVer = 0
	idxSAccVer = 1
	idxPIdent  = 2
	idxQCovs   = 16
)

// Record is one alignment row. Fields keeps the raw values so that
// written output reproduces the input formatting exactly.
type Record struct {
	Fields  []string
	QAccVer string
	SAccVer string
	PIdent  float64
	QCovs   float64
	Line    int
}

// SelfHit reports whether query and subject are the same accession.
func (r Record) SelfHit() bool { return r.QAccVer == r.SAccVer }

// NewRecord projects fields by position onto the schema. The column count
// must match exactly; pident and qcovs must be numeric.
func NewRecord(fields []string, where string) (Record, error) {
	if len(fields) != NumColumns {
		return Record{}, fmt.Errorf("%s: %w: got %d columns, want %d (%s)",
			where, ErrSchema, len(fields), NumColumns, strings.Join(Columns, " "))
	}
	pid, err := ParsePercent(fields[idxPIdent], ColPIdent, where)
	if err != nil {
		return Record{}, err
	}
	qc, err := ParsePercent(fields[idxQCovs], ColQCovs, where)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Fields:  fields,
		QAccVer: fields[idxQAccVer],
		SAccVer: fields[idxSAccVer],
		PIdent:  pid,
		QCovs:   qc,
	}, nil
}

// ParsePercent parses a finite numeric cell. Anything else is ErrData.
func ParsePercent(v, col, where string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: %w: %s %q is not a number", where, ErrData, col, v)
	}
	return f, nil
}

// isCanonicalHeader reports whether fields spell out Columns exactly.
func isCanonicalHeader(fields []string) bool {
	if len(fields) != NumColumns {
		return false
	}
	for i, c := range Columns {
		if fields[i] != c {
			return false
		}
	}
	return true
}

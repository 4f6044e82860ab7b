package writers

import (
	"bufio"
	"io"
	"strings"

	"github.com/rnharmening/DupGeneIdentifier/internal/blast"
)

// WriteAlignmentTSV writes the canonical header followed by each record's
// raw fields, tab-separated.
func WriteAlignmentTSV(w io.Writer, recs []blast.Record) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(blast.Columns, "\t") + "\n"); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := bw.WriteString(strings.Join(r.Fields, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteDeletionList writes one accession per line, no header.
func WriteDeletionList(w io.Writer, ids []string) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := bw.WriteString(id + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

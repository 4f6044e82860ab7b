// Package filter keeps confident, non-self alignment hits.
package filter

import "github.com/rnharmening/DupGeneIdentifier/internal/blast"

// Default thresholds.
const (
	DefaultPIdent = 80
	DefaultQCovs  = 75
)

// Thresholds are exclusive lower bounds: a record must exceed both.
type Thresholds struct {
	PIdent int
	QCovs  int
}

// Defaults returns the stock thresholds (pident > 80, qcovs > 75).
func Defaults() Thresholds { return Thresholds{PIdent: DefaultPIdent, QCovs: DefaultQCovs} }

// Keep reports whether r survives: not a self-hit, pident and qcovs
// strictly above their thresholds.
func (th Thresholds) Keep(r blast.Record) bool {
	if r.SelfHit() {
		return false
	}
	return r.PIdent > float64(th.PIdent) && r.QCovs > float64(th.QCovs)
}

// Apply returns the records that survive th, in input order.
func Apply(recs []blast.Record, th Thresholds) []blast.Record {
	out := make([]blast.Record, 0, len(recs))
	for _, r := range recs {
		if th.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}

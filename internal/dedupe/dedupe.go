// Package dedupe turns perfect (100% identity, 100% coverage) alignment
// hits into a deletion list that keeps one accession per mutually
// confirmed duplicate pair.
//
// A pair (a, b) is confirmed only when both the a→b and the b→a rows are
// present; a hit seen in one orientation never triggers a deletion. Of a
// confirmed pair the byte-wise greater accession (strings.Compare order)
// is deleted and the smaller is kept.
package dedupe

import (
	"sort"

	"github.com/rnharmening/DupGeneIdentifier/internal/blast"
)

// Perfect is the only pident/qcovs value treated as an exact duplicate.
const Perfect = 100.0

// Pair is an ordered (query, subject) accession tuple.
type Pair struct {
	Query   string
	Subject string
}

// Flip returns the pair read in the other orientation.
func (p Pair) Flip() Pair { return Pair{Query: p.Subject, Subject: p.Query} }

// Loser is the accession deleted for this pair: the greater of the two.
func (p Pair) Loser() string {
	if p.Query > p.Subject {
		return p.Query
	}
	return p.Subject
}

// Result is the outcome of resolving one table.
type Result struct {
	Delete    []string // sorted ascending, unique
	Exact     int      // distinct ordered exact pairs
	Confirmed int      // distinct unordered pairs seen in both orientations
	OneWay    int      // ordered exact pairs whose reverse is missing
}

// ExactPairs restricts t to rows with pident == 100, qcovs == 100 and
// distinct accessions. The table needs qaccver, saccver, pident and qcovs
// columns (blast.ErrSchema otherwise); non-numeric percentages are
// blast.ErrData. An input with no lines at all yields no pairs.
func ExactPairs(t *blast.Table) ([]Pair, error) {
	if t.Empty() {
		return nil, nil
	}
	idx, err := t.Require(blast.ColQAccVer, blast.ColSAccVer, blast.ColPIdent, blast.ColQCovs)
	if err != nil {
		return nil, err
	}
	qi, si, pi, ci := idx[0], idx[1], idx[2], idx[3]

	var out []Pair
	for i, row := range t.Rows {
		pid, err := blast.ParsePercent(row[pi], blast.ColPIdent, t.Where(i))
		if err != nil {
			return nil, err
		}
		cov, err := blast.ParsePercent(row[ci], blast.ColQCovs, t.Where(i))
		if err != nil {
			return nil, err
		}
		if pid != Perfect || cov != Perfect {
			continue
		}
		p := Pair{Query: row[qi], Subject: row[si]}
		if p.Query == p.Subject {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Resolve intersects the forward and flipped pair sets and collects the
// greater accession of every confirmed pair.
func Resolve(pairs []Pair) Result {
	forward := make(map[Pair]struct{}, len(pairs))
	reverse := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		forward[p] = struct{}{}
		reverse[p.Flip()] = struct{}{}
	}

	res := Result{Exact: len(forward)}
	del := make(map[string]struct{})
	confirmed := 0
	for p := range forward {
		if _, ok := reverse[p]; !ok {
			res.OneWay++
			continue
		}
		confirmed++
		del[p.Loser()] = struct{}{}
	}
	// each confirmed unordered pair appears once per orientation
	res.Confirmed = confirmed / 2

	res.Delete = make([]string, 0, len(del))
	for id := range del {
		res.Delete = append(res.Delete, id)
	}
	sort.Strings(res.Delete)
	return res
}

// ResolveTable is ExactPairs followed by Resolve.
func ResolveTable(t *blast.Table) (Result, error) {
	pairs, err := ExactPairs(t)
	if err != nil {
		return Result{}, err
	}
	return Resolve(pairs), nil
}

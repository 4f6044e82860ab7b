package blast

import "io"

// ReadRaw loads a headerless 18-column alignment table.
func ReadRaw(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ParseRaw(rc, DisplayName(path))
}

// ParseRaw reads headerless alignment rows from r. A first line equal to
// the canonical header is skipped so filtered tables can be re-filtered.
func ParseRaw(r io.Reader, name string) ([]Record, error) {
	var recs []Record
	first := true
	err := eachRow(r, name, func(fields []string, ln int) error {
		if first {
			first = false
			if isCanonicalHeader(fields) {
				return nil
			}
		}
		rec, err := NewRecord(fields, at(name, ln))
		if err != nil {
			return err
		}
		rec.Line = ln
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

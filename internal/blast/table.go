package blast

import (
	"fmt"
	"io"
	"strings"
)

// Table is a headered tab-separated table with cells kept as strings.
type Table struct {
	Source string
	Header []string
	Rows   [][]string
	Lines  []int // source line of each row
	index  map[string]int
}

// ReadTable loads a headered table from path.
func ReadTable(path string) (*Table, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ParseTable(rc, DisplayName(path))
}

// ParseTable reads a header line followed by rows of the same width.
// Input with no lines at all gives an empty table without a header.
func ParseTable(r io.Reader, name string) (*Table, error) {
	t := &Table{Source: name, index: map[string]int{}}
	err := eachRow(r, name, func(fields []string, ln int) error {
		if t.Header == nil {
			t.Header = fields
			for i, h := range fields {
				h = strings.TrimSpace(h)
				if _, dup := t.index[h]; !dup {
					t.index[h] = i
				}
			}
			return nil
		}
		if len(fields) != len(t.Header) {
			return fmt.Errorf("%s: %w: got %d columns, header has %d",
				at(name, ln), ErrSchema, len(fields), len(t.Header))
		}
		t.Rows = append(t.Rows, fields)
		t.Lines = append(t.Lines, ln)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Empty reports whether the input had neither header nor rows.
func (t *Table) Empty() bool { return t.Header == nil && len(t.Rows) == 0 }

// Col returns the index of a named column.
func (t *Table) Col(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Require resolves names to column indexes, failing with ErrSchema
// listing every missing column.
func (t *Table) Require(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	var missing []string
	for i, n := range names {
		j, ok := t.Col(n)
		if !ok {
			missing = append(missing, n)
			continue
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: missing required column(s) %s",
			t.Source, ErrSchema, strings.Join(missing, ", "))
	}
	return idx, nil
}

// Where names a row's source position for messages.
func (t *Table) Where(row int) string { return at(t.Source, t.Lines[row]) }

package blast

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLine = 1 << 20

// eachRow calls fn with the tab-split fields and 1-based line number of
// every non-blank line. Trailing CR is dropped.
func eachRow(r io.Reader, name string, fn func(fields []string, ln int) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(strings.Split(line, "\t"), ln); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func at(name string, ln int) string { return fmt.Sprintf("%s:%d", name, ln) }

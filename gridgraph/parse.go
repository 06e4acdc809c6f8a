package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads one row per line and one decimal digit per cell.
// Surrounding whitespace on each line is trimmed and blank lines are skipped.
// Any other character yields ErrBadDigit; rows of differing length yield
// ErrNonRectangular and an input with no rows yields ErrEmptyGrid.
func Parse(r io.Reader) (*GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadDigit, line, col+1, ch)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading input: %w", err)
	}

	return NewGridGraph(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*GridGraph, error) {
	return Parse(strings.NewReader(s))
}

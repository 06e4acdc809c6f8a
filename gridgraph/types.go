// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeWeight indicates a cell holds a weight below zero.
	ErrNegativeWeight = errors.New("gridgraph: cell weights must be non-negative")
	// ErrBadDigit indicates parsed input contains a character that is not a decimal digit.
	ErrBadDigit = errors.New("gridgraph: input must contain one decimal digit per cell")
)

// Cell identifies a single grid position. X is the column, Y the row.
type Cell struct {
	X, Y int
}

// String renders the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// GridGraph treats a 2D grid of entry weights as an implicit 4-connected graph.
// It is immutable once built: the weights are only reachable through Weight
// and Rows, so the cached MinWeight always matches them.
type GridGraph struct {
	Width, Height int

	weights   [][]int // weights[y][x] is the cost of entering cell (x,y)
	minWeight int
}

package gridgraph

import (
	"fmt"
	"math"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first,
// ErrNegativeWeight if any cell is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	minW := math.MaxInt
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell %d,%d = %d", ErrNegativeWeight, x, y, v)
			}
			if v < minW {
				minW = v
			}
			cells[y][x] = v
		}
	}

	return &GridGraph{
		Width:     w,
		Height:    h,
		weights:   cells,
		minWeight: minW,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// Weight returns the cost of entering c. It panics if c is out of bounds.
func (gg *GridGraph) Weight(c Cell) int {
	if !gg.InBounds(c) {
		panic(fmt.Sprintf("gridgraph: cell %s outside %dx%d grid", c, gg.Width, gg.Height))
	}

	return gg.weights[c.Y][c.X]
}

// Rows returns a copy of the weights as rows, Rows()[y][x] being the cost of
// entering (x,y). Changing the copy does not affect the grid.
func (gg *GridGraph) Rows() [][]int {
	out := make([][]int, gg.Height)
	for y, row := range gg.weights {
		out[y] = append([]int(nil), row...)
	}

	return out
}

// MinWeight returns the smallest weight stored in the grid.
func (gg *GridGraph) MinWeight() int {
	return gg.minWeight
}

// Len returns the number of cells.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// TopLeft returns the cell (0,0).
func (gg *GridGraph) TopLeft() Cell {
	return Cell{}
}

// BottomRight returns the cell (Width-1, Height-1).
func (gg *GridGraph) BottomRight() Cell {
	return Cell{X: gg.Width - 1, Y: gg.Height - 1}
}

// Index maps c to a row‑major index: Y*Width + X.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

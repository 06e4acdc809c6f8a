package route

import (
	"github.com/katalvlaran/crucible/astar"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// cellCosts folds settled states down to the cheapest cost per cell.
// One instance is written by exactly one search.
type cellCosts struct {
	width int
	costs []int64 // row-major
}

func newCellCosts(g *gridgraph.GridGraph) *cellCosts {
	costs := make([]int64, g.Len())
	for i := range costs {
		costs[i] = astar.Unreachable
	}

	return &cellCosts{width: g.Width, costs: costs}
}

// settle is an astar OnSettle hook.
func (t *cellCosts) settle(s momentum.State, cost int64) {
	i := s.Cell.Y*t.width + s.Cell.X
	if cost < t.costs[i] {
		t.costs[i] = cost
	}
}

// mergeCellCosts takes the element-wise minimum of tables (nil entries are
// skipped) and reshapes it as [y][x].
func mergeCellCosts(g *gridgraph.GridGraph, tables []*cellCosts) [][]int64 {
	out := make([][]int64, g.Height)
	for y := range out {
		out[y] = make([]int64, g.Width)
		for x := range out[y] {
			out[y][x] = astar.Unreachable
		}
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		for i, c := range t.costs {
			cell := g.Coordinate(i)
			if c < out[cell.Y][cell.X] {
				out[cell.Y][cell.X] = c
			}
		}
	}

	return out
}

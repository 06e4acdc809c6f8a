package route

import (
	"github.com/katalvlaran/crucible/astar"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// Problem adapts a momentum.Model to astar.Problem for a single goal cell.
//
// The estimate is the Manhattan distance to the goal scaled by the grid's
// smallest weight: every remaining step enters at least one cell costing at
// least that much, so the bound never overestimates, even when weights
// include zero.
type Problem struct {
	model *momentum.Model
	goal  gridgraph.Cell
	scale int64
}

// NewProblem binds m to goal.
func NewProblem(m *momentum.Model, goal gridgraph.Cell) *Problem {
	return &Problem{
		model: m,
		goal:  goal,
		scale: int64(m.Grid().MinWeight()),
	}
}

// Successors delegates to momentum.Model.Expand.
func (p *Problem) Successors(s momentum.State, dst []astar.Step[momentum.State]) []astar.Step[momentum.State] {
	var buf [4]momentum.Step
	for _, st := range p.model.Expand(s, buf[:0]) {
		dst = append(dst, astar.Step[momentum.State]{State: st.State, Cost: st.Cost})
	}

	return dst
}

// IsGoal reports whether s stands on the goal cell with a run it may stop on.
func (p *Problem) IsGoal(s momentum.State) bool {
	return s.Cell == p.goal && p.model.CanStop(s)
}

// Estimate returns Manhattan(s.Cell, goal) × MinWeight.
func (p *Problem) Estimate(s momentum.State) int64 {
	return int64(gridgraph.Manhattan(s.Cell, p.goal)) * p.scale
}

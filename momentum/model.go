package momentum

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Model binds Rules to a grid and enumerates legal successor states.
// It is immutable and safe for concurrent use.
type Model struct {
	grid  *gridgraph.GridGraph
	rules Rules
	limit int
	table table
}

// NewModel validates r and precomputes its transition table for g.
// Returns ErrNilGrid or ErrBadRules.
func NewModel(g *gridgraph.GridGraph, r Rules) (*Model, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &Model{
		grid:  g,
		rules: r,
		limit: r.runLimit(),
		table: buildTable(r),
	}, nil
}

// Rules returns the rules the model was built with.
func (m *Model) Rules() Rules {
	return m.rules
}

// Grid returns the underlying grid.
func (m *Model) Grid() *gridgraph.GridGraph {
	return m.grid
}

// Origin returns the sentinel start state at c: no heading, no run.
func Origin(c gridgraph.Cell) State {
	return State{Cell: c}
}

// Expand appends to dst every state reachable from s by exactly one step and
// returns the extended slice. Candidates are evaluated Up, Down, Left, Right;
// a candidate is dropped when the table forbids it (reversal, straight run at
// its cap, turn before the minimum run) or when its cell is off the grid.
// Each Step carries the weight of the entered cell.
//
// Expand panics if s lies outside the grid or carries an impossible Run.
// Complexity: O(1).
func (m *Model) Expand(s State, dst []Step) []Step {
	if !m.grid.InBounds(s.Cell) || s.Run < 0 || s.Run >= m.limit || s.Heading >= numHeadings {
		panic(fmt.Errorf("%w: %s", ErrStateOutOfBounds, s))
	}
	row := relationOf[s.Heading]
	for _, h := range headings {
		tr := m.table[row[h]][s.Run]
		if !tr.allowed {
			continue
		}
		dx, dy := h.Delta()
		next := gridgraph.Cell{X: s.Cell.X + dx, Y: s.Cell.Y + dy}
		if !m.grid.InBounds(next) {
			continue
		}
		dst = append(dst, Step{
			State: State{Cell: next, Heading: h, Run: tr.run},
			Cost:  int64(m.grid.Weight(next)),
		})
	}

	return dst
}

// CanStop reports whether a traveler in state s may end its journey there:
// origin states always can, moving states once their run meets MinStraight.
func (m *Model) CanStop(s State) bool {
	return s.Heading == None || s.Run+1 >= m.rules.minStraight()
}

// AxisSeeds returns the committed first steps from c along both axes, in the
// order Right, Down, Left, Up, skipping those that leave the grid. Each seed
// has Run 0 and carries the weight of the cell it enters. Searching every seed
// and taking the minimum is equivalent to searching from Origin(c) for any
// goal other than c itself. From the top-left corner only Right and Down remain.
func (m *Model) AxisSeeds(c gridgraph.Cell) []Step {
	seeds := make([]Step, 0, len(headings))
	for _, h := range [...]Heading{Right, Down, Left, Up} {
		dx, dy := h.Delta()
		next := gridgraph.Cell{X: c.X + dx, Y: c.Y + dy}
		if !m.grid.InBounds(next) {
			continue
		}
		seeds = append(seeds, Step{
			State: State{Cell: next, Heading: h},
			Cost:  int64(m.grid.Weight(next)),
		})
	}

	return seeds
}

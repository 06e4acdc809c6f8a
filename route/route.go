package route

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/crucible/astar"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// MinHeatLoss returns the minimum total cost of moving from Options.Start to
// Options.Goal on g under Options.Rules. The cost of a route is the sum of the
// weights of every cell it enters; the start cell itself is free, so a route
// on a 1×1 grid costs 0.
//
// An unreachable goal is not an error: Result.Found is false and Result.Cost
// is astar.Unreachable.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. Start and Goal must lie on g (ErrStartOutOfBounds, ErrGoalOutOfBounds).
//  4. Rules must be valid (momentum.ErrBadRules).
//
// Complexity: O(S log S) time, O(S) memory, S = W×H×4×runLimit states.
func MinHeatLoss(g *gridgraph.GridGraph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return unreachable(), cfg.err
	}
	if g == nil {
		return unreachable(), ErrNilGrid
	}
	if !cfg.goalSet {
		cfg.Goal = g.BottomRight()
	}
	if !g.InBounds(cfg.Start) {
		return unreachable(), fmt.Errorf("%w: %s", ErrStartOutOfBounds, cfg.Start)
	}
	if !g.InBounds(cfg.Goal) {
		return unreachable(), fmt.Errorf("%w: %s", ErrGoalOutOfBounds, cfg.Goal)
	}

	m, err := momentum.NewModel(g, cfg.Rules)
	if err != nil {
		return unreachable(), err
	}

	var (
		res    astar.Result
		tables []*cellCosts
	)
	switch cfg.Seeding {
	case SeedAxes:
		res, tables, err = searchAxes(cfg, m)
	default:
		res, tables, err = searchOrigin(cfg, m)
	}
	if err != nil {
		return unreachable(), err
	}

	out := Result{Cost: res.Cost, Found: res.Found, Expanded: res.Expanded}
	if cfg.CellCosts {
		out.CellCosts = mergeCellCosts(g, tables)
	}

	return out, nil
}

// Search runs one informed search on m from seeds to goal. Each seed's Cost is
// the cost already paid to stand in its state. It is the building block of
// both seeding modes and is exported for callers that craft their own seeds.
func Search(
	m *momentum.Model,
	seeds []momentum.Step,
	goal gridgraph.Cell,
	opts ...astar.Option[momentum.State],
) (astar.Result, error) {
	if m == nil {
		return astar.Result{Cost: astar.Unreachable}, ErrNilModel
	}
	if !m.Grid().InBounds(goal) {
		return astar.Result{Cost: astar.Unreachable}, fmt.Errorf("%w: %s", ErrGoalOutOfBounds, goal)
	}
	sd := make([]astar.Seed[momentum.State], 0, len(seeds))
	for _, s := range seeds {
		if !m.Grid().InBounds(s.State.Cell) {
			return astar.Result{Cost: astar.Unreachable}, fmt.Errorf("%w: seed %s", ErrStartOutOfBounds, s.State)
		}
		sd = append(sd, astar.Seed[momentum.State]{State: s.State, Cost: s.Cost})
	}

	return astar.Search[momentum.State](NewProblem(m, goal), sd, opts...)
}

// searchOrigin searches once from the heading-less start state.
func searchOrigin(cfg Options, m *momentum.Model) (astar.Result, []*cellCosts, error) {
	var table *cellCosts
	opts := []astar.Option[momentum.State]{astar.WithContext[momentum.State](cfg.Ctx)}
	if cfg.CellCosts {
		table = newCellCosts(m.Grid())
		opts = append(opts, astar.WithOnSettle(table.settle))
	}
	seeds := []momentum.Step{{State: momentum.Origin(cfg.Start)}}
	res, err := Search(m, seeds, cfg.Goal, opts...)

	return res, []*cellCosts{table}, err
}

// searchAxes searches each committed first step from the start cell (up to
// four, see momentum.Model.AxisSeeds) in its own goroutine. Every
// search owns its cost table and frontier; the results meet only in the
// final astar.Best reduction.
func searchAxes(cfg Options, m *momentum.Model) (astar.Result, []*cellCosts, error) {
	if cfg.Start == cfg.Goal {
		table := newCellCosts(m.Grid())
		table.settle(momentum.Origin(cfg.Start), 0)
		return astar.Result{Cost: 0, Found: true}, []*cellCosts{table}, nil
	}

	seeds := m.AxisSeeds(cfg.Start)
	results := make([]astar.Result, len(seeds))
	errs := make([]error, len(seeds))
	tables := make([]*cellCosts, len(seeds))

	var wg sync.WaitGroup
	for i, sd := range seeds {
		wg.Add(1)
		go func(i int, sd momentum.Step) {
			defer wg.Done()
			opts := []astar.Option[momentum.State]{astar.WithContext[momentum.State](cfg.Ctx)}
			if cfg.CellCosts {
				tables[i] = newCellCosts(m.Grid())
				opts = append(opts, astar.WithOnSettle(tables[i].settle))
			}
			results[i], errs[i] = Search(m, []momentum.Step{sd}, cfg.Goal, opts...)
		}(i, sd)
	}
	wg.Wait()

	best := astar.Result{Cost: astar.Unreachable}
	for i := range results {
		if errs[i] != nil {
			return best, nil, errs[i]
		}
		best = astar.Best(best, results[i])
	}

	return best, tables, nil
}

func unreachable() Result {
	return Result{Cost: astar.Unreachable}
}

// Package route defines options, seeding modes and results for
// minimum heat-loss searches over a weighted grid.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// Sentinel errors returned by MinHeatLoss.
var (
	// ErrNilGrid indicates a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrNilModel indicates Search received a nil *momentum.Model.
	ErrNilModel = errors.New("route: model is nil")

	// ErrStartOutOfBounds indicates the start cell is not on the grid.
	ErrStartOutOfBounds = errors.New("route: start cell outside grid")

	// ErrGoalOutOfBounds indicates the goal cell is not on the grid.
	ErrGoalOutOfBounds = errors.New("route: goal cell outside grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// Seeding selects how the search is started from the start cell.
type Seeding int

const (
	// SeedOrigin starts from a single state with no heading; every first move is open.
	SeedOrigin Seeding = iota

	// SeedAxes commits separately to every first step that stays on the grid
	// (Right and Down from the top-left corner), searches them in parallel and
	// keeps the cheapest result.
	SeedAxes
)

// String implements fmt.Stringer.
func (s Seeding) String() string {
	switch s {
	case SeedOrigin:
		return "origin"
	case SeedAxes:
		return "axes"
	default:
		return fmt.Sprintf("seeding(%d)", int(s))
	}
}

// Options configures MinHeatLoss.
//
//	Ctx       – checked once per search-loop iteration.
//	Rules     – straight-run bounds; default momentum.Classic().
//	Start     – start cell; default top-left.
//	Goal      – goal cell; default bottom-right.
//	Seeding   – SeedOrigin (default) or SeedAxes.
//	CellCosts – when true, Result.CellCosts holds the cheapest settled cost per cell.
type Options struct {
	Ctx       context.Context
	Rules     momentum.Rules
	Start     gridgraph.Cell
	Goal      gridgraph.Cell
	Seeding   Seeding
	CellCosts bool

	goalSet bool
	err     error
}

// Option represents a functional option for configuring MinHeatLoss.
type Option func(*Options)

// DefaultOptions returns Options for the classic puzzle: classic rules,
// top-left to bottom-right, origin seeding, background context.
// The goal is resolved against the grid when the search runs.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Rules:   momentum.Classic(),
		Seeding: SeedOrigin,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRules replaces the straight-run rules. They are validated when the search runs.
func WithRules(r momentum.Rules) Option {
	return func(o *Options) {
		o.Rules = r
	}
}

// WithStart sets the start cell.
func WithStart(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithGoal sets the goal cell.
func WithGoal(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Goal = c
		o.goalSet = true
	}
}

// WithSeeding selects the seeding mode. Unknown modes → ErrOptionViolation.
func WithSeeding(s Seeding) Option {
	return func(o *Options) {
		switch s {
		case SeedOrigin, SeedAxes:
			o.Seeding = s
		default:
			o.err = fmt.Errorf("%w: unknown seeding %s", ErrOptionViolation, s)
		}
	}
}

// WithCellCosts requests the per-cell table of settled costs in the Result.
func WithCellCosts() Option {
	return func(o *Options) {
		o.CellCosts = true
	}
}

// Result is the outcome of MinHeatLoss.
//
//	Cost      – minimum total heat loss, or astar.Unreachable.
//	Found     – whether the goal was reached under the rules.
//	Expanded  – expansions across all searches run.
//	CellCosts – with WithCellCosts: CellCosts[y][x] is the cheapest cost with which
//	            any state at (x,y) was settled, astar.Unreachable if none was.
type Result struct {
	Cost      int64
	Found     bool
	Expanded  int
	CellCosts [][]int64
}

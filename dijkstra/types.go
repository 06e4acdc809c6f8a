// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm on weighted grids.
//
// Dijkstra computes the minimum entry cost from a source cell to every other
// cell of a gridgraph.GridGraph using plain 4-neighbour moves: no heading, no
// run-length limits. Moving into a cell costs that cell's weight; the source
// itself costs nothing.
//
// Complexity:
//
//	– Time:  O(V log V)   where V = W×H (E ≤ 4V)
//	   • Each cell is extracted from the priority queue at most once.
//	   • Each relaxation may push into the priority queue (up to 4V pushes).
//	– Space: O(V)
//	   • O(V) distance and visited slices, O(V) heap entries (lazy decrease-key).
//
// Options:
//
//	– Source:      starting cell (default top-left).
//	– MaxDistance: optional cap on distances to explore; cells beyond it stay unreached.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds if the source cell is not on the grid.
//	– ErrOptionViolation   if an option received an invalid value.
//
// Example usage:
//
//	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(gridgraph.Cell{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("cost to bottom-right:", dist[g.Height-1][g.Width-1])
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfBounds indicates that the source cell does not lie on the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell outside grid")

	// ErrOptionViolation indicates an option was given an invalid value,
	// such as a negative MaxDistance.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Unreached is the distance reported for cells Dijkstra never reached.
const Unreached int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell (must lie on the grid).
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      gridgraph.Cell // The starting cell
	MaxDistance int64          // Maximum distance to explore

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given cell.
func Source(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values are recorded and surfaced as ErrOptionViolation.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:      the top-left cell.
//   - MaxDistance: math.MaxInt64 (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
	}
}

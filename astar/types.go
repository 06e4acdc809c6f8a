// Package astar defines the problem contract, options and results
// for informed best-first search over an implicit state graph.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unreachable is the Cost reported when no goal state can be reached.
// It is the identity element of Best.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by Search.
var (
	// ErrNilProblem indicates Search received a nil Problem.
	ErrNilProblem = errors.New("astar: problem is nil")

	// ErrNoSeeds indicates Search received no seed states.
	ErrNoSeeds = errors.New("astar: at least one seed state is required")

	// ErrNegativeCost indicates a seed or step carried a negative cost.
	ErrNegativeCost = errors.New("astar: negative cost encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Step is a successor state with the cost of moving into it.
type Step[S comparable] struct {
	State S
	Cost  int64
}

// Seed is a starting state with the cost already paid to reach it.
type Seed[S comparable] struct {
	State S
	Cost  int64
}

// Problem describes the implicit graph explored by Search.
//
//	Successors – append every state reachable in one step from s to dst and return it.
//	IsGoal     – report whether s terminates the search.
//	Estimate   – lower bound on the remaining cost from s to any goal. It must never
//	             overestimate. If it is also consistent (Estimate(s) ≤ cost(s→t) + Estimate(t)
//	             for every step) each state is expanded once; otherwise a state may be
//	             reopened when a cheaper path to it is found later.
type Problem[S comparable] interface {
	Successors(s S, dst []Step[S]) []Step[S]
	IsGoal(s S) bool
	Estimate(s S) int64
}

// Result is the outcome of a search.
//
//	Cost     – total cost of the cheapest goal state, or Unreachable.
//	Found    – whether a goal state was reached.
//	Expanded – number of expansions (pops that were not stale), reopenings included.
//	Reopened – expansions of a state that had already been expanded at a higher cost.
//	           Always 0 under a consistent Estimate.
type Result struct {
	Cost     int64
	Found    bool
	Expanded int
	Reopened int
}

// Best combines two independent search results with a minimum reduction.
// An unreachable result loses to any found one; Expanded and Reopened counts are summed.
func Best(a, b Result) Result {
	out := a
	if !a.Found || (b.Found && b.Cost < a.Cost) {
		out = b
	}
	out.Expanded = a.Expanded + b.Expanded
	out.Reopened = a.Reopened + b.Reopened

	return out
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks for one Search call.
type Options[S comparable] struct {
	// Ctx is checked once per main-loop iteration.
	Ctx context.Context

	// MaxCost stops the search once the lowest frontier priority exceeds it.
	// Default is Unreachable (no cap).
	MaxCost int64

	// OnSettle is called on every expansion with the state's cost at that time.
	// Under a consistent Estimate that cost is final and each state is reported
	// once; otherwise a reopened state is reported again with a lower cost.
	OnSettle func(state S, cost int64)

	err error
}

// DefaultOptions returns Options with a background context, no cost cap
// and a no-op OnSettle hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		MaxCost:  Unreachable,
		OnSettle: func(S, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost abandons the search once no goal cheaper than or equal to c can remain.
// A negative c is invalid → ErrOptionViolation.
func WithMaxCost[S comparable](c int64) Option[S] {
	return func(o *Options[S]) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnSettle registers a callback run on every expansion (see Options.OnSettle).
func WithOnSettle[S comparable](fn func(state S, cost int64)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

package astar

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Search runs best-first search from seeds until a goal state is settled.
//
// Behavior:
//  1. Every seed enters the cost table at its own cost and the frontier at
//     priority cost + Estimate.
//  2. The lowest-priority entry is popped. Entries whose cost is no longer the
//     recorded best are skipped.
//  3. A popped goal state ends the search; its cost is minimal because
//     Estimate never overestimates.
//  4. Otherwise each successor is relaxed: it is recorded and pushed only when
//     the new cost is strictly lower than the recorded one. This holds for
//     states already expanded too, so an admissible but inconsistent Estimate
//     reopens them (counted in Result.Reopened).
//  5. An exhausted frontier yields Result{Cost: Unreachable, Found: false}
//     and a nil error: an unreachable goal is an answer, not a failure.
//
// The cost table and frontier belong to this call alone, so independent
// searches may run concurrently. Ties in priority are broken towards the
// deeper entry; the returned cost does not depend on tie order.
//
// Complexity: O(E log E) time and O(V + E) memory over the states explored.
func Search[S comparable](p Problem[S], seeds []Seed[S], opts ...Option[S]) (Result, error) {
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{Cost: Unreachable}, cfg.err
	}
	if p == nil {
		return Result{Cost: Unreachable}, ErrNilProblem
	}
	if len(seeds) == 0 {
		return Result{Cost: Unreachable}, ErrNoSeeds
	}

	r := &runner[S]{
		problem:  p,
		options:  cfg,
		costs:    make(map[S]int64),
		expanded: mapset.New[S](),
		frontier: heap.New[entry[S]](lessEntry[S]),
	}
	if err := r.init(seeds); err != nil {
		return Result{Cost: Unreachable}, err
	}

	return r.process()
}

// entry is one frontier record. Duplicates of a state may coexist.
type entry[S comparable] struct {
	state S
	g     int64 // cost so far
	f     int64 // g + Estimate
}

// lessEntry orders by f, then prefers larger g so deeper entries surface first.
func lessEntry[S comparable](a, b entry[S]) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.g > b.g
}

// runner holds the mutable state of a single Search call.
type runner[S comparable] struct {
	problem  Problem[S]
	options  Options[S]
	costs    map[S]int64   // best known cost per state
	expanded mapset.Set[S] // states popped at least once
	frontier *heap.Heap[entry[S]]
	buf      []Step[S]
	result   Result
}

// init records every seed, keeping the cheapest when seeds repeat.
func (r *runner[S]) init(seeds []Seed[S]) error {
	for _, sd := range seeds {
		if sd.Cost < 0 {
			return fmt.Errorf("%w: seed %v cost=%d", ErrNegativeCost, sd.State, sd.Cost)
		}
		if cur, ok := r.costs[sd.State]; ok && cur <= sd.Cost {
			continue
		}
		r.costs[sd.State] = sd.Cost
		r.frontier.Push(entry[S]{
			state: sd.State,
			g:     sd.Cost,
			f:     sd.Cost + r.problem.Estimate(sd.State),
		})
	}

	return nil
}

// process is the main loop: pop, settle, test goal, relax.
func (r *runner[S]) process() (Result, error) {
	ctx := r.options.Ctx
	r.result.Cost = Unreachable
	for r.frontier.Size() > 0 {
		if err := ctx.Err(); err != nil {
			return r.result, err
		}

		cur, _ := r.frontier.Pop()
		if cur.g > r.costs[cur.state] {
			continue // stale
		}
		if cur.f > r.options.MaxCost {
			break
		}

		if r.expanded.Has(cur.state) {
			r.result.Reopened++
		} else {
			r.expanded.Put(cur.state)
		}
		r.result.Expanded++
		r.options.OnSettle(cur.state, cur.g)

		if r.problem.IsGoal(cur.state) {
			r.result.Cost, r.result.Found = cur.g, true
			return r.result, nil
		}
		if err := r.relax(cur); err != nil {
			return r.result, err
		}
	}

	return r.result, nil
}

// relax offers every successor of cur a strictly cheaper cost.
func (r *runner[S]) relax(cur entry[S]) error {
	r.buf = r.problem.Successors(cur.state, r.buf[:0])
	for _, st := range r.buf {
		if st.Cost < 0 {
			return fmt.Errorf("%w: step %v→%v cost=%d", ErrNegativeCost, cur.state, st.State, st.Cost)
		}
		tentative := cur.g + st.Cost
		if known, ok := r.costs[st.State]; ok && tentative >= known {
			continue
		}
		r.costs[st.State] = tentative
		r.frontier.Push(entry[S]{
			state: st.State,
			g:     tentative,
			f:     tentative + r.problem.Estimate(st.State),
		})
	}

	return nil
}

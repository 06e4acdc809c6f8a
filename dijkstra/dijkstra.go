// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted grids.
//
// It serves as the unconstrained reference for momentum-constrained searches:
// with no run-length limit and reversal allowed, a constrained search must
// agree with it exactly, and under any constraints it can only cost more.
//
// Notes on implementation choices:
//
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// offsets lists the 4-neighbour moves: N, E, S, W.
var offsets = [...]gridgraph.Cell{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Dijkstra computes shortest entry-cost distances from Options.Source to every
// cell of g. dist[y][x] is the cheapest sum of weights of the cells entered on
// the way to (x,y), or Unreached.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrSourceOutOfBounds).
//
// Complexity:
//
//   - Time:  O(V log V), V = W×H
//   - Space: O(V)
func Dijkstra(g *gridgraph.GridGraph, opts ...Option) ([][]int64, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate Source lies on the grid
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %s", ErrSourceOutOfBounds, cfg.Source)
	}

	// 4) Prepare data structures for the algorithm.
	V := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 5) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	// 6) Reshape row-major distances as [y][x].
	out := make([][]int64, g.Height)
	for y := range out {
		out[y] = r.dist[y*g.Width : (y+1)*g.Width : (y+1)*g.Width]
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.GridGraph // The input grid; read-only within Dijkstra.
	options Options              // Configuration options (Source, MaxDistance).
	dist    []int64              // Row-major cell index → current best distance from Source.
	visited []bool               // Tracks if a cell's distance is finalized.
	pq      nodePQ               // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to Unreached, the source to zero, and pushes the source.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Unreached
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its neighbours.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
}

// relax tries to improve the distance of every in-bounds neighbour of cell u.
// Entering neighbour v costs the weight of v.
func (r *runner) relax(u int) {
	cu := r.g.Coordinate(u)
	for _, d := range offsets {
		cv := gridgraph.Cell{X: cu.X + d.X, Y: cu.Y + d.Y}
		if !r.g.InBounds(cv) {
			continue
		}
		v := r.g.Index(cv)
		newDist := r.dist[u] + int64(r.g.Weight(cv))

		// If newDist exceeds MaxDistance, we skip relaxing this neighbour.
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances would just add duplicates.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	idx  int   // row-major cell index
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries remain in the heap and are ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

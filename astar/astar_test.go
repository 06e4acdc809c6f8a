package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/astar"
)

// graphProblem is an explicit weighted digraph over string states.
type graphProblem struct {
	edges map[string][]astar.Step[string]
	goal  string
	h     map[string]int64
}

func newGraph(goal string) *graphProblem {
	return &graphProblem{edges: map[string][]astar.Step[string]{}, goal: goal, h: map[string]int64{}}
}

func (g *graphProblem) edge(from, to string, cost int64) *graphProblem {
	g.edges[from] = append(g.edges[from], astar.Step[string]{State: to, Cost: cost})
	return g
}

func (g *graphProblem) Successors(s string, dst []astar.Step[string]) []astar.Step[string] {
	return append(dst, g.edges[s]...)
}

func (g *graphProblem) IsGoal(s string) bool { return s == g.goal }

func (g *graphProblem) Estimate(s string) int64 { return g.h[s] }

func seed(s string, c int64) []astar.Seed[string] {
	return []astar.Seed[string]{{State: s, Cost: c}}
}

// ------------------------------------------------------------------------
// 1. Basic functionality.
// ------------------------------------------------------------------------

func TestSearch_Triangle(t *testing.T) {
	g := newGraph("C").edge("A", "B", 1).edge("B", "C", 2).edge("A", "C", 5)

	res, err := astar.Search[string](g, seed("A", 0))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int64(3), res.Cost)
	assert.Positive(t, res.Expanded)
}

func TestSearch_SeedCostIsIncluded(t *testing.T) {
	g := newGraph("B").edge("A", "B", 2)

	res, err := astar.Search[string](g, seed("A", 7))
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.Cost)
}

func TestSearch_SeedIsGoal(t *testing.T) {
	g := newGraph("A").edge("A", "B", 1)

	res, err := astar.Search[string](g, seed("A", 4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_StaleEntriesIgnored(t *testing.T) {
	// C is first pushed at cost 10, then improved to 2 through B.
	g := newGraph("D").
		edge("A", "C", 10).
		edge("A", "B", 1).
		edge("B", "C", 1).
		edge("C", "D", 1)

	res, err := astar.Search[string](g, seed("A", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cost)
}

func TestSearch_MultipleSeedsTakeMinimum(t *testing.T) {
	g := newGraph("G").edge("A", "G", 1).edge("B", "G", 4)

	seeds := []astar.Seed[string]{{State: "A", Cost: 9}, {State: "B", Cost: 0}, {State: "A", Cost: 12}}
	res, err := astar.Search[string](g, seeds)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
}

func TestSearch_Unreachable(t *testing.T) {
	g := newGraph("Z").edge("A", "B", 1).edge("B", "A", 1)

	res, err := astar.Search[string](g, seed("A", 0))
	require.NoError(t, err, "unreachable is a result, not an error")
	assert.False(t, res.Found)
	assert.Equal(t, astar.Unreachable, res.Cost)
	assert.Equal(t, 2, res.Expanded)
}

func TestSearch_ZeroCostCycle(t *testing.T) {
	g := newGraph("C").edge("A", "B", 0).edge("B", "A", 0).edge("B", "C", 3)

	res, err := astar.Search[string](g, seed("A", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cost)
}

// ------------------------------------------------------------------------
// 2. Validation.
// ------------------------------------------------------------------------

func TestSearch_Errors(t *testing.T) {
	var nilProblem astar.Problem[string]
	_, err := astar.Search(nilProblem, seed("A", 0))
	assert.ErrorIs(t, err, astar.ErrNilProblem)

	g := newGraph("B").edge("A", "B", 1)
	_, err = astar.Search[string](g, nil)
	assert.ErrorIs(t, err, astar.ErrNoSeeds)

	_, err = astar.Search[string](g, seed("A", -1))
	assert.ErrorIs(t, err, astar.ErrNegativeCost)

	neg := newGraph("B").edge("A", "B", -3)
	_, err = astar.Search[string](neg, seed("A", 0))
	assert.ErrorIs(t, err, astar.ErrNegativeCost)

	_, err = astar.Search[string](g, seed("A", 0), astar.WithMaxCost[string](-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestSearch_ContextCancelled(t *testing.T) {
	g := newGraph("B").edge("A", "B", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := astar.Search[string](g, seed("A", 0), astar.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Found)
}

func TestSearch_MaxCost(t *testing.T) {
	g := newGraph("B").edge("A", "B", 5)

	res, err := astar.Search[string](g, seed("A", 0), astar.WithMaxCost[string](4))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = astar.Search[string](g, seed("A", 0), astar.WithMaxCost[string](5))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int64(5), res.Cost)
}

func TestSearch_OnSettleNonDecreasing(t *testing.T) {
	g := newGraph("E").
		edge("A", "B", 2).edge("A", "C", 1).
		edge("C", "B", 0).edge("B", "D", 4).
		edge("C", "D", 7).edge("D", "E", 1)

	var order []int64
	settled := map[string]int64{}
	res, err := astar.Search[string](g, seed("A", 0), astar.WithOnSettle(func(s string, c int64) {
		order = append(order, c)
		settled[s] = c
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Cost)
	assert.IsNonDecreasing(t, order)
	assert.Equal(t, int64(1), settled["B"])
	assert.Len(t, order, res.Expanded)
}

// ------------------------------------------------------------------------
// 4. Heuristic guidance.
// ------------------------------------------------------------------------

// gridProblem is a uniform-cost open n×n grid from (0,0) to (n-1,n-1).
type gridProblem struct {
	n        int
	informed bool
}

type pt struct{ x, y int }

func (g gridProblem) Successors(s pt, dst []astar.Step[pt]) []astar.Step[pt] {
	for _, d := range [...]pt{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := s.x+d.x, s.y+d.y
		if nx < 0 || ny < 0 || nx >= g.n || ny >= g.n {
			continue
		}
		dst = append(dst, astar.Step[pt]{State: pt{nx, ny}, Cost: 1})
	}
	return dst
}

func (g gridProblem) IsGoal(s pt) bool { return s.x == g.n-1 && s.y == g.n-1 }

func (g gridProblem) Estimate(s pt) int64 {
	if !g.informed {
		return 0
	}
	return int64((g.n - 1 - s.x) + (g.n - 1 - s.y))
}

// TestSearch_InconsistentEstimateReopens: h(A)=10 never overestimates (A is 11
// from G) but is not consistent, so C is first expanded through B at 4 and must
// be reopened at 2 once A is expanded.
func TestSearch_InconsistentEstimateReopens(t *testing.T) {
	g := newGraph("G").
		edge("S", "A", 1).edge("A", "C", 1).
		edge("S", "B", 1).edge("B", "C", 3).
		edge("C", "G", 10)
	g.h["A"] = 10

	var costsOfC []int64
	res, err := astar.Search[string](g, seed("S", 0), astar.WithOnSettle(func(s string, c int64) {
		if s == "C" {
			costsOfC = append(costsOfC, c)
		}
	}))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int64(12), res.Cost)
	assert.Equal(t, 1, res.Reopened)
	assert.Equal(t, 6, res.Expanded)
	assert.Equal(t, []int64{4, 2}, costsOfC)
}

func TestSearch_ConsistentEstimateNeverReopens(t *testing.T) {
	seeds := []astar.Seed[pt]{{State: pt{0, 0}}}
	res, err := astar.Search[pt](gridProblem{n: 12, informed: true}, seeds)
	require.NoError(t, err)
	assert.Equal(t, int64(22), res.Cost)
	assert.Zero(t, res.Reopened)
}

func TestSearch_HeuristicPrunes(t *testing.T) {
	seeds := []astar.Seed[pt]{{State: pt{0, 0}}}

	blind, err := astar.Search[pt](gridProblem{n: 20}, seeds)
	require.NoError(t, err)
	guided, err := astar.Search[pt](gridProblem{n: 20, informed: true}, seeds)
	require.NoError(t, err)

	assert.Equal(t, int64(38), blind.Cost)
	assert.Equal(t, blind.Cost, guided.Cost)
	assert.Less(t, guided.Expanded, blind.Expanded)
}

// ------------------------------------------------------------------------
// 5. Result combination.
// ------------------------------------------------------------------------

func TestBest(t *testing.T) {
	none := astar.Result{Cost: astar.Unreachable, Expanded: 3}
	five := astar.Result{Cost: 5, Found: true, Expanded: 10}
	seven := astar.Result{Cost: 7, Found: true, Expanded: 2}

	assert.Equal(t, astar.Result{Cost: 5, Found: true, Expanded: 13}, astar.Best(none, five))
	assert.Equal(t, astar.Result{Cost: 5, Found: true, Expanded: 13}, astar.Best(five, none))
	assert.Equal(t, astar.Result{Cost: 5, Found: true, Expanded: 12}, astar.Best(seven, five))
	assert.Equal(t, astar.Result{Cost: 5, Found: true, Expanded: 12}, astar.Best(five, seven))
	assert.Equal(t, astar.Result{Cost: astar.Unreachable, Expanded: 6}, astar.Best(none, none))

	reopened := astar.Result{Cost: 9, Found: true, Expanded: 4, Reopened: 1}
	assert.Equal(t, astar.Result{Cost: 5, Found: true, Expanded: 14, Reopened: 1}, astar.Best(reopened, five))
}

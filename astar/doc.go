// Package astar implements informed best-first (A*) search over an
// implicit, generic state graph with non-negative step costs.
//
// Callers describe the graph through Problem: a successor function, a goal
// test and an admissible estimate of the remaining cost. Search explores
// states in order of cost-so-far plus estimate and stops at the first
// settled goal state.
//
// Complexity:
//
//   - Time:  O(E log E) over the explored part of the graph (lazy decrease-key).
//   - Space: O(V + E) for the cost table, expanded set and frontier.
//
// Notes on implementation choices:
//
//   - The frontier is a binary min-heap (github.com/zyedidia/generic/heap).
//     Improved costs push a new entry; stale entries are skipped when popped.
//   - Expanded states are tracked in a set (github.com/zyedidia/generic/mapset).
//     A strictly cheaper path reopens an expanded state, so an admissible
//     estimate suffices for optimality; consistency only avoids reopenings.
//   - An unreachable goal is reported as data: Found == false, Cost == Unreachable.
//   - Options.Ctx is checked once per main-loop iteration.
//   - Results of independent searches combine with Best.
package astar

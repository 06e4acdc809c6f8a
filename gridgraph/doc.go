// Package gridgraph treats a 2D grid of entry weights as a graph for
// momentum-constrained and plain shortest-path searches.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of non-negative weights.
//   - Weight(Cell{x, y}) is the cost paid when a traveler enters cell (x,y).
//   - Cells are addressed by Cell{X, Y}; (0,0) is the top-left corner.
//   - Parse reads the classic "one digit per cell, one row per line" format.
//
// Why:
//
//   - Heat-loss puzzles: route a crucible across a city of blocks.
//   - Terrain costs: any map where entering a tile has a price.
//
// Complexity:
//
//   - NewGridGraph: O(W×H), Memory: O(W×H).
//   - Parse:        O(W×H), Memory: O(W×H).
//   - InBounds, Weight, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths; input is never truncated.
//   - ErrNegativeWeight: a cell holds a negative value.
//   - ErrBadDigit: parsed text contains a non-digit character.
package gridgraph

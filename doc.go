// Package crucible computes the minimum heat loss of a crucible pushed across
// a city grid whose blocks each cost a single digit to enter.
//
// A crucible cannot reverse, and its straight runs are bounded: the classic
// crucible turns after at most three blocks, the ultra crucible must travel
// at least four and at most ten blocks before turning or stopping.
//
// Packages:
//
//	gridgraph/ rectangular weight grid, cell coordinates, digit parser
//	momentum/  heading/run states and the straight-run transition table
//	astar/     generic A* with lazy decrease-key and cancellation
//	route/     MinHeatLoss: wires grid, rules and A* together
//	dijkstra/  plain single-source shortest paths over the grid, the unconstrained reference
//	render/    PNG heatmaps of weights and settled costs
//
// The crucible command reads a puzzle file and prints the answer:
//
//	go run ./cmd/crucible -f inputs/17.txt -p 2
package crucible

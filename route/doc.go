// Package route finds the minimum heat-loss route of a crucible across a
// grid of city blocks.
//
// Entering a block costs its weight. The crucible carries momentum: it may
// not reverse, may not travel more than Rules.MaxStraight blocks in one
// heading and, for ultra crucibles, must travel at least Rules.MinStraight
// blocks before turning or stopping. route binds a momentum.Model to the
// generic astar engine with a Manhattan lower bound and returns the cost only.
//
// Seeding:
//
//   - SeedOrigin (default): one heading-less start state; every first move is open.
//   - SeedAxes: the first step right and the first step down are searched in
//     parallel, each with its own cost table and frontier, and the cheaper
//     result wins.
//
// Cost convention: the start block is free. A 1×1 grid costs 0.
//
// Example:
//
//	g, _ := gridgraph.ParseString(input)
//	res, err := route.MinHeatLoss(g, route.WithRules(momentum.Ultra()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Cost)
//	}
package route

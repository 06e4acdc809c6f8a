// Package momentum models a traveler whose legal moves depend on its
// heading and on how many cells it has already travelled in that heading.
//
// A State is (Cell, Heading, Run). From a state the traveler may:
//
//   - continue straight while its run stays under Rules.MaxStraight;
//   - turn left or right once its run has reached Rules.MinStraight;
//   - never reverse, unless Rules.AllowReverse is set.
//
// The very first move from an origin state (Heading None) may go in any
// direction. All of this is encoded once per Rules in a transition table
// keyed by (relation to current heading, run length); Model.Expand performs
// one table lookup and one bounds check per candidate heading.
//
// Presets:
//
//   - Classic():       MinStraight 1, MaxStraight 3.
//   - Ultra():         MinStraight 4, MaxStraight 10.
//   - Unconstrained(): no bounds, reversal allowed; equivalent to plain 4-neighbour moves.
//
// Complexity: NewModel O(MaxStraight); Expand O(1).
package momentum

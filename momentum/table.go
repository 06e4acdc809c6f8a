package momentum

// relation classifies a candidate heading against the current one.
type relation uint8

const (
	relStart    relation = iota // current heading is None
	relStraight                 // candidate == current
	relTurn                     // candidate is perpendicular
	relReverse                  // candidate == current.Reverse()
	numRelations
)

// relationOf[current][candidate] is precomputed for every heading pair.
var relationOf = func() (m [numHeadings][numHeadings]relation) {
	for cur := Heading(0); cur < numHeadings; cur++ {
		for cand := Heading(0); cand < numHeadings; cand++ {
			switch {
			case cur == None:
				m[cur][cand] = relStart
			case cand == cur:
				m[cur][cand] = relStraight
			case cand == cur.Reverse():
				m[cur][cand] = relReverse
			default:
				m[cur][cand] = relTurn
			}
		}
	}
	return m
}()

// transition is one cell of the table: whether the move is legal and the
// run length the successor state carries.
type transition struct {
	allowed bool
	run     int
}

// table maps (relation, current run) to a transition for one Rules value.
// It replaces per-heading branching with a single lookup in Expand.
type table [numRelations][]transition

// buildTable precomputes every transition for r.
// Complexity: O(runLimit), Memory: O(runLimit).
func buildTable(r Rules) table {
	var t table
	limit := r.runLimit()
	minRun := r.minStraight()
	for rel := relation(0); rel < numRelations; rel++ {
		t[rel] = make([]transition, limit)
	}
	for run := 0; run < limit; run++ {
		// cells already travelled in the current heading, counting the turn step
		travelled := run + 1
		canTurn := travelled >= minRun

		t[relStart][run] = transition{allowed: true, run: 0}
		t[relTurn][run] = transition{allowed: canTurn, run: 0}
		t[relReverse][run] = transition{allowed: r.AllowReverse && canTurn, run: 0}

		if r.MaxStraight > 0 {
			t[relStraight][run] = transition{allowed: travelled < r.MaxStraight, run: run + 1}
		} else {
			t[relStraight][run] = transition{allowed: true, run: min(run+1, limit-1)}
		}
	}

	return t
}

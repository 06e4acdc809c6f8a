// Package momentum defines headings, search states and movement rules
// for travelers whose legal moves depend on how they arrived at a cell.
package momentum

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors for momentum models.
var (
	// ErrNilGrid indicates NewModel received a nil grid.
	ErrNilGrid = errors.New("momentum: grid is nil")

	// ErrBadRules indicates negative straight-run bounds or a minimum above the maximum.
	ErrBadRules = errors.New("momentum: invalid straight-run rules")

	// ErrStateOutOfBounds marks a state whose cell or run length lies outside the model.
	// Expand panics with this error: it signals a programming error, not a runtime condition.
	ErrStateOutOfBounds = errors.New("momentum: state outside model bounds")
)

// Heading is the compass direction of the most recent step.
// None is the heading of an origin state that has not moved yet.
type Heading uint8

const (
	// None marks a state with no prior step; every direction is open from it.
	None Heading = iota
	// Up decreases Y.
	Up
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right

	numHeadings = 5
)

// headings lists the candidate directions in the fixed order Expand evaluates them.
var headings = [...]Heading{Up, Down, Left, Right}

// Reverse returns the opposite heading. None has no opposite and returns None.
func (h Heading) Reverse() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Delta returns the cell offset of one step in heading h.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// String implements fmt.Stringer.
func (h Heading) String() string {
	switch h {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("heading(%d)", uint8(h))
	}
}

// State is the unit of exploration: a cell plus the momentum that reached it.
// Run counts the steps already taken in Heading beyond the first one, so the
// step that changes heading is stored with Run == 0. Two states at the same
// cell with different Heading or Run are distinct search nodes.
type State struct {
	Cell    gridgraph.Cell
	Heading Heading
	Run     int
}

// String renders the state as "x,y/heading/run".
func (s State) String() string {
	return fmt.Sprintf("%s/%s/%d", s.Cell, s.Heading, s.Run)
}

// Step is a successor state tagged with the cost of entering its cell.
type Step struct {
	State State
	Cost  int64
}

// Rules bounds straight runs.
//
//	MinStraight  – cells that must be travelled in one heading before turning
//	               or stopping. Values ≤ 1 impose no minimum.
//	MaxStraight  – most cells that may be travelled in one heading.
//	               0 means unbounded.
//	AllowReverse – permit U-turns. The classic puzzle forbids them.
type Rules struct {
	MinStraight  int
	MaxStraight  int
	AllowReverse bool
}

// Classic returns the rules of the standard crucible: at most three cells
// in a row, no reversing.
func Classic() Rules {
	return Rules{MinStraight: 1, MaxStraight: 3}
}

// Ultra returns the rules of the ultra crucible: at least four and at most
// ten cells in a row, no reversing.
func Ultra() Rules {
	return Rules{MinStraight: 4, MaxStraight: 10}
}

// Unconstrained returns rules that reduce the model to plain grid movement.
func Unconstrained() Rules {
	return Rules{MinStraight: 1, MaxStraight: 0, AllowReverse: true}
}

// Validate reports ErrBadRules for negative bounds or MinStraight > MaxStraight
// when MaxStraight is bounded.
func (r Rules) Validate() error {
	if r.MinStraight < 0 || r.MaxStraight < 0 {
		return fmt.Errorf("%w: min=%d max=%d must be non-negative", ErrBadRules, r.MinStraight, r.MaxStraight)
	}
	if r.MaxStraight > 0 && r.MinStraight > r.MaxStraight {
		return fmt.Errorf("%w: min=%d exceeds max=%d", ErrBadRules, r.MinStraight, r.MaxStraight)
	}

	return nil
}

// minStraight normalizes MinStraight so that "no minimum" is 1.
func (r Rules) minStraight() int {
	if r.MinStraight < 1 {
		return 1
	}

	return r.MinStraight
}

// runLimit is the number of distinct Run values a state can hold.
// Bounded rules use [0, MaxStraight); unbounded rules saturate Run at
// MinStraight-1 because longer runs expose no further options.
func (r Rules) runLimit() int {
	if r.MaxStraight > 0 {
		return r.MaxStraight
	}

	return r.minStraight()
}

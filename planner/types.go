package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/route"
	"github.com/katalvlaran/pickroute/tsp"
)

// Sentinel errors for planning and editing.
var (
	// ErrGridNil is returned by NewSession and Compute for a nil grid.
	ErrGridNil = errors.New("planner: grid is nil")
	// ErrNoTargets is returned when no pick point is placed.
	ErrNoTargets = errors.New("planner: no pick points")
	// ErrNoDepot is returned when the grid has no depot.
	ErrNoDepot = errors.New("planner: no depot")
	// ErrUnreachableTarget is matched by *UnreachableError.
	ErrUnreachableTarget = errors.New("planner: pick point unreachable from depot")
	// ErrBusy is returned by edits while segments are pending display.
	ErrBusy = errors.New("planner: route display in progress")
	// ErrOptionViolation is returned for an invalid Option.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// UnreachableError lists the pick points with no walkable path from the
// depot. Blockers are the obstacle cells whose removal would reconnect
// them, one minimal set per cut-off region.
type UnreachableError struct {
	Points   []gridgraph.Point
	Blockers []gridgraph.Point
}

func (e *UnreachableError) Error() string {
	pts := make([]string, len(e.Points))
	for i, p := range e.Points {
		pts[i] = p.String()
	}
	msg := fmt.Sprintf("%v: %s", ErrUnreachableTarget, strings.Join(pts, " "))
	if len(e.Blockers) > 0 {
		msg += fmt.Sprintf(" (clear %d wall cell(s))", len(e.Blockers))
	}

	return msg
}

// Unwrap matches ErrUnreachableTarget.
func (e *UnreachableError) Unwrap() error { return ErrUnreachableTarget }

// Mode selects the tour constructor.
type Mode = tsp.Algo

// Planning modes.
const (
	ModeSequential = tsp.Sequential
	ModeGreedy     = tsp.Greedy
)

// ParseMode accepts "sequential" or "greedy" (case-insensitive).
func ParseMode(s string) (Mode, error) { return tsp.ParseAlgo(s) }

// Plan is the outcome of one planning run.
type Plan struct {
	ID     string
	Mode   Mode
	Points []gridgraph.Point // depot first, then pick points in insertion order
	Route  *route.Route
	Moves  int // accepted 2-opt reversals
}

// VisitOrder returns the tour position of p, 0 when p is not visited.
func (p *Plan) VisitOrder(pt gridgraph.Point) int {
	for _, v := range p.Route.Visits {
		if v.Point == pt {
			return v.Order
		}
	}

	return 0
}

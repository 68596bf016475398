package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pickroute/bfs"
	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/layout"
	"github.com/katalvlaran/pickroute/metrics"
	"github.com/katalvlaran/pickroute/route"
	"github.com/katalvlaran/pickroute/tsp"
)

// Option configures a Session.
type Option func(*Session)

// WithTSPOptions sets the tour options. Algo is overridden per Plan call.
func WithTSPOptions(o tsp.Options) Option {
	return func(s *Session) {
		if o.TwoOptMaxIters < 0 {
			s.err = fmt.Errorf("%w: TwoOptMaxIters cannot be negative (%d)", ErrOptionViolation, o.TwoOptMaxIters)
			return
		}
		s.tspOpts = o
	}
}

// WithUnit sets the physical distance of one cell used by Table.
func WithUnit(unit float64) Option {
	return func(s *Session) {
		if unit <= 0 {
			s.err = fmt.Errorf("%w: unit must be positive (%g)", ErrOptionViolation, unit)
			return
		}
		s.unit = unit
	}
}

// WithMetrics records every run on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Session) { s.rec = rec }
}

// WithIDFunc replaces the plan ID generator (uuid by default).
func WithIDFunc(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Session is one planning context over a grid.
type Session struct {
	grid    *gridgraph.Grid
	tspOpts tsp.Options
	unit    float64
	rec     *metrics.Recorder
	newID   func() string

	current *Plan
	display []route.Segment // not yet shown
	held    []route.Segment // return leg awaiting CommitReturn

	err error
}

// NewSession wraps g. Defaults: tsp.DefaultOptions, unit 1, no metrics.
func NewSession(g *gridgraph.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	s := &Session{
		grid:    g,
		tspOpts: tsp.DefaultOptions(),
		unit:    1,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}

	return s, nil
}

// Grid exposes the floor for reading. Mutate it through the Session.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Unit returns the physical distance per cell.
func (s *Session) Unit() float64 { return s.unit }

// Current returns the last successful plan, nil after an edit.
func (s *Session) Current() *Plan { return s.current }

// Plan computes a route in the given mode and commits it. On error the
// session and grid are left exactly as they were.
func (s *Session) Plan(mode Mode) (*Plan, error) {
	start := time.Now()
	visited := 0
	p, err := Compute(s.grid, mode, s.tspOpts, bfs.WithOnVisit(func(gridgraph.Point, int) { visited++ }))
	s.rec.AddVisited(visited)
	s.rec.ObservePlan(mode.String(), outcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	p.ID = s.newID()

	s.grid.ClearVisitOrders()
	for _, v := range p.Route.Visits {
		// visits come from this grid's points of interest, always in bounds
		_ = s.grid.SetVisitOrder(v.Point, v.Order)
	}
	s.current = p
	s.display = p.Route.Outbound()
	s.held = p.Route.Return()
	s.rec.ObserveRoute(mode.String(), p.Route.TotalHops(), p.Moves)

	return p, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNoTargets):
		return metrics.OutcomeNoTargets
	case errors.Is(err, ErrUnreachableTarget):
		return metrics.OutcomeUnreachable
	default:
		return metrics.OutcomeError
	}
}

// CommitReturn releases the held return leg into the display queue and
// returns a copy of it. It is a no-op reporting false when nothing is held
// or the outbound walk is still being shown.
func (s *Session) CommitReturn() ([]route.Segment, bool) {
	if len(s.held) == 0 || len(s.display) > 0 {
		return nil, false
	}
	out := s.held
	s.held = nil
	s.display = append([]route.Segment(nil), out...)

	return out, true
}

// Advance pops up to k segments from the display queue.
func (s *Session) Advance(k int) []route.Segment {
	if k <= 0 || len(s.display) == 0 {
		return nil
	}
	k = min(k, len(s.display))
	out := append([]route.Segment(nil), s.display[:k]...)
	s.display = s.display[k:]
	if len(s.display) == 0 {
		s.display = nil
	}

	return out
}

// Displaying reports whether segments are pending display.
func (s *Session) Displaying() bool { return len(s.display) > 0 }

// ReturnReady reports whether CommitReturn would release the return leg.
func (s *Session) ReturnReady() bool { return len(s.held) > 0 && len(s.display) == 0 }

// Pending returns a copy of the display queue.
func (s *Session) Pending() []route.Segment {
	return append([]route.Segment(nil), s.display...)
}

// Held returns a copy of the held return leg.
func (s *Session) Held() []route.Segment {
	return append([]route.Segment(nil), s.held...)
}

// Table renders the current plan's leg statistics, nil without a plan.
func (s *Session) Table() []route.TableRow {
	if s.current == nil {
		return nil
	}

	return s.current.Route.Table(s.unit)
}

// Snapshot captures the floor as layout records.
func (s *Session) Snapshot() []layout.Record { return layout.Snapshot(s.grid) }

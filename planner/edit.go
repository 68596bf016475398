package planner

import (
	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/layout"
)

// edit runs fn unless a display is in progress and, when fn changed the
// floor, drops the current plan with its visit orders and held return leg.
func (s *Session) edit(fn func() error) error {
	if s.Displaying() {
		return ErrBusy
	}
	if err := fn(); err != nil {
		return err
	}
	s.discard()

	return nil
}

func (s *Session) discard() {
	s.grid.ClearVisitOrders()
	s.current = nil
	s.held = nil
}

// SetObstacle walls p. A depot or pick point at p is removed.
func (s *Session) SetObstacle(p gridgraph.Point) error {
	return s.edit(func() error { return s.grid.SetObstacle(p) })
}

// ClearObstacle reopens p.
func (s *Session) ClearObstacle(p gridgraph.Point) error {
	return s.edit(func() error { return s.grid.ClearObstacle(p) })
}

// TogglePickPoint adds or removes the pick point at p and reports whether
// p is a pick point afterwards.
func (s *Session) TogglePickPoint(p gridgraph.Point) (bool, error) {
	var on bool
	err := s.edit(func() (err error) {
		on, err = s.grid.TogglePickPoint(p)
		return err
	})

	return on, err
}

// SetDepot moves the depot to p.
func (s *Session) SetDepot(p gridgraph.Point) error {
	return s.edit(func() error { return s.grid.SetDepot(p) })
}

// Reset clears the floor back to an empty grid with the depot at (0,0).
func (s *Session) Reset() error {
	return s.edit(func() error {
		s.grid.Reset()
		return nil
	})
}

// LoadLayout replaces the floor with records. Rejected records are
// reported in the returned error; the rest are applied and the current plan
// is discarded either way.
func (s *Session) LoadLayout(records []layout.Record) error {
	if s.Displaying() {
		return ErrBusy
	}
	err := layout.Apply(s.grid, records)
	s.discard()

	return err
}

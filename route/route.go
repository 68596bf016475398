package route

import (
	"fmt"

	"github.com/katalvlaran/pickroute/distmatrix"
	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/tsp"
)

// Materialize expands tour into cell legs using the predecessor maps
// retained in m. The tour must start at the depot (index 0) and visit every
// matrix index once.
func Materialize(m *distmatrix.Matrix, tour []int) (*Route, error) {
	if len(tour) == 0 {
		return nil, ErrEmptyTour
	}
	if err := tsp.ValidateTour(tour, m.Len()); err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	r := &Route{
		Tour:   tsp.CopyTour(tour),
		Legs:   make([]Leg, 0, len(tour)-1),
		Visits: make([]Visit, 0, len(tour)-1),
	}
	for k := 0; k+1 < len(tour); k++ {
		leg, err := extractLeg(m, tour[k], tour[k+1], Picking)
		if err != nil {
			return nil, err
		}
		r.Legs = append(r.Legs, leg)
		r.Visits = append(r.Visits, Visit{Point: m.Point(tour[k+1]), Order: k + 1})
	}

	ret, err := extractLeg(m, tour[len(tour)-1], 0, Return)
	if err != nil {
		return nil, err
	}
	r.ReturnLeg = ret

	return r, nil
}

// extractLeg walks to's predecessor chain in from's tree back to from.
func extractLeg(m *distmatrix.Matrix, from, to int, kind LegKind) (Leg, error) {
	leg := Leg{From: from, To: to, Kind: kind}
	if from == to {
		return leg, nil
	}
	path, err := m.Tree(from).PathTo(m.Point(to))
	if err != nil {
		return Leg{}, fmt.Errorf("%w: %v → %v: %w", ErrBrokenChain, m.Point(from), m.Point(to), err)
	}
	// path[0] is the origin cell
	leg.Cells = append([]gridgraph.Point(nil), path[1:]...)
	leg.Hops = len(leg.Cells)

	return leg, nil
}

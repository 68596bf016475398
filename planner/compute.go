package planner

import (
	"fmt"

	"github.com/katalvlaran/pickroute/bfs"
	"github.com/katalvlaran/pickroute/distmatrix"
	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/route"
	"github.com/katalvlaran/pickroute/tsp"
)

// Compute runs the whole pipeline on g without modifying it. mode overrides
// opts.Algo; bfsOpts are forwarded to every shortest-path search.
// The returned Plan has no ID.
func Compute(g *gridgraph.Grid, mode Mode, opts tsp.Options, bfsOpts ...bfs.Option) (*Plan, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if len(g.PickPoints()) == 0 {
		return nil, ErrNoTargets
	}
	poi, ok := g.PointsOfInterest()
	if !ok {
		return nil, ErrNoDepot
	}

	m, err := distmatrix.Build(g, poi, bfsOpts...)
	if err != nil {
		return nil, fmt.Errorf("planner: distance matrix: %w", err)
	}
	if cut := m.UnreachableFrom(0); len(cut) > 0 {
		return nil, unreachable(g, m, cut)
	}

	opts.Algo = mode
	res, err := tsp.Construct(m, opts)
	if err != nil {
		return nil, fmt.Errorf("planner: tour: %w", err)
	}
	r, err := route.Materialize(m, res.Tour)
	if err != nil {
		return nil, fmt.Errorf("planner: materialize: %w", err)
	}

	return &Plan{Mode: mode, Points: m.Points(), Route: r, Moves: res.Moves}, nil
}

// unreachable builds the error for the cut-off indices, computing one
// minimal breach per disconnected region.
func unreachable(g *gridgraph.Grid, m *distmatrix.Matrix, cut []int) *UnreachableError {
	depot := m.Point(0)
	labels, _ := g.ConnectedComponents()
	seen := make(map[int]bool)
	blocked := make(map[gridgraph.Point]bool)

	ue := &UnreachableError{Points: make([]gridgraph.Point, 0, len(cut))}
	for _, j := range cut {
		p := m.Point(j)
		ue.Points = append(ue.Points, p)

		region := labels[g.Index(p.X, p.Y)]
		if seen[region] {
			continue
		}
		seen[region] = true
		_, breaches, err := g.MinimalBreach(depot, p)
		if err != nil {
			continue
		}
		for _, b := range breaches {
			if !blocked[b] {
				blocked[b] = true
				ue.Blockers = append(ue.Blockers, b)
			}
		}
	}

	return ue
}

package route_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pickroute/bfs"
	"github.com/katalvlaran/pickroute/distmatrix"
	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/route"
	"github.com/katalvlaran/pickroute/tsp"
)

// floor builds a grid from rows where '#' marks an obstacle.
func floor(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				require.NoError(t, g.SetObstacle(gridgraph.Point{X: x, Y: y}))
			}
		}
	}

	return g
}

func pt(x, y int) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

// requireWalk checks that cells form an axis-aligned walk starting next to
// from over open cells.
func requireWalk(t *testing.T, g *gridgraph.Grid, from gridgraph.Point, cells []gridgraph.Point) {
	t.Helper()
	prev := from
	for k, c := range cells {
		dx, dy := c.X-prev.X, c.Y-prev.Y
		require.Equal(t, 1, dx*dx+dy*dy, "step %d %v→%v is not a unit move", k, prev, c)
		cell, err := g.Cell(c)
		require.NoError(t, err)
		require.False(t, cell.Obstacle, "step %d enters obstacle %v", k, c)
		prev = c
	}
}

// TestMaterialize_Detour walks around a wall and holds the return leg apart.
//
//	D . . . .
//	. # # # .
//	B . . . A
func TestMaterialize_Detour(t *testing.T) {
	g := floor(t, ".....", ".###.", ".....")
	m, err := distmatrix.Build(g, []gridgraph.Point{pt(0, 0), pt(4, 2), pt(0, 2)})
	require.NoError(t, err)

	r, err := route.Materialize(m, []int{0, 1, 2})
	require.NoError(t, err)

	require.Len(t, r.Legs, 2)
	assert.Equal(t, 6, r.Legs[0].Hops)
	assert.Equal(t, 4, r.Legs[1].Hops)
	assert.Equal(t, 2, r.ReturnHops())
	assert.Equal(t, 10, r.OutboundHops())
	assert.Equal(t, 12, r.TotalHops())

	requireWalk(t, g, pt(0, 0), r.Legs[0].Cells)
	requireWalk(t, g, pt(4, 2), r.Legs[1].Cells)
	requireWalk(t, g, pt(0, 2), r.ReturnLeg.Cells)
	assert.Equal(t, pt(4, 2), r.Legs[0].Cells[5])
	assert.Equal(t, pt(0, 0), r.ReturnLeg.Cells[1])

	assert.Equal(t, []route.Visit{{Point: pt(4, 2), Order: 1}, {Point: pt(0, 2), Order: 2}}, r.Visits)

	for _, s := range r.Outbound() {
		assert.Equal(t, route.Picking, s.Kind)
	}
	ret := r.Return()
	require.Len(t, ret, 2)
	assert.Equal(t, route.Return, ret[0].Kind)
}

// TestMaterialize_Table scales hop counts by the physical unit.
func TestMaterialize_Table(t *testing.T) {
	g := floor(t, ".....", ".###.", ".....")
	m, err := distmatrix.Build(g, []gridgraph.Point{pt(0, 0), pt(4, 2), pt(0, 2)})
	require.NoError(t, err)
	r, err := route.Materialize(m, []int{0, 1, 2})
	require.NoError(t, err)

	want := []route.TableRow{
		{Label: "S0", Hops: 6, Units: 12},
		{Label: "S1", Hops: 4, Units: 8},
		{Label: route.LabelOutboundSum, Hops: 10, Units: 20},
		{Label: route.LabelReturn, Hops: 2, Units: 4},
		{Label: route.LabelFinalSum, Hops: 12, Units: 24},
	}
	assert.Equal(t, want, r.Table(2))
}

// TestMaterialize_Idempotent yields equal routes for equal inputs.
func TestMaterialize_Idempotent(t *testing.T) {
	g := floor(t, "......", ".##.#.", "......", "#.##..")
	m, err := distmatrix.Build(g, []gridgraph.Point{pt(0, 0), pt(5, 3), pt(1, 3), pt(3, 1)})
	require.NoError(t, err)

	a, err := route.Materialize(m, []int{0, 2, 3, 1})
	require.NoError(t, err)
	b, err := route.Materialize(m, []int{0, 2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestMaterialize_LegLengthMatchesMatrix checks every leg against the matrix
// on random floors.
func TestMaterialize_LegLengthMatchesMatrix(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	for k := 0; k < 20; k++ {
		g, err := gridgraph.New(10, 10)
		require.NoError(t, err)
		for i := 1; i < g.Len(); i++ {
			if rnd.Intn(4) == 0 {
				require.NoError(t, g.SetObstacle(g.PointAt(i)))
			}
		}
		reach, err := bfs.Grid(g, pt(0, 0))
		require.NoError(t, err)
		if len(reach.Order) < 3 {
			continue
		}
		pts := []gridgraph.Point{pt(0, 0)}
		for _, i := range rnd.Perm(len(reach.Order) - 1)[:min(5, len(reach.Order)-1)] {
			pts = append(pts, g.PointAt(reach.Order[i+1]))
		}
		m, err := distmatrix.Build(g, pts)
		require.NoError(t, err)

		tour := tsp.SequentialTour(len(pts))
		rnd.Shuffle(len(tour)-1, func(a, b int) { tour[a+1], tour[b+1] = tour[b+1], tour[a+1] })
		r, err := route.Materialize(m, tour)
		require.NoError(t, err)

		for _, l := range r.Legs {
			require.Equal(t, m.Dist(l.From, l.To), l.Hops)
			requireWalk(t, g, m.Point(l.From), l.Cells)
		}
		require.Equal(t, m.Dist(tour[len(tour)-1], 0), r.ReturnHops())
		require.Equal(t, tsp.TourCost(m, tour), r.OutboundHops())
	}
}

// TestMaterialize_Errors covers malformed tours and unreachable pairs.
func TestMaterialize_Errors(t *testing.T) {
	g := floor(t, "..#.")
	m, err := distmatrix.Build(g, []gridgraph.Point{pt(0, 0), pt(3, 0)})
	require.NoError(t, err)

	_, err = route.Materialize(m, nil)
	assert.ErrorIs(t, err, route.ErrEmptyTour)

	_, err = route.Materialize(m, []int{1, 0})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = route.Materialize(m, []int{0, 1})
	assert.ErrorIs(t, err, route.ErrBrokenChain)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

// TestLegKind_String renders the display tags.
func TestLegKind_String(t *testing.T) {
	assert.Equal(t, "PICKING", route.Picking.String())
	assert.Equal(t, "RETURN", route.Return.String())
	assert.Equal(t, "UNKNOWN", route.LegKind(7).String())
}

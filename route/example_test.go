package route_test

import (
	"fmt"

	"github.com/katalvlaran/pickroute/distmatrix"
	"github.com/katalvlaran/pickroute/gridgraph"
	"github.com/katalvlaran/pickroute/route"
)

// ExampleMaterialize walks from the depot to one pick point and back on an
// open 4×4 floor.
func ExampleMaterialize() {
	g, _ := gridgraph.New(4, 4)
	_ = g.AddPickPoint(gridgraph.Point{X: 0, Y: 3})
	poi, _ := g.PointsOfInterest()
	m, _ := distmatrix.Build(g, poi)

	r, err := route.Materialize(m, []int{0, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("outbound:", r.Legs[0].Cells)
	fmt.Println("return:  ", r.ReturnLeg.Cells)
	for _, row := range r.Table(1.5) {
		fmt.Printf("%-6s %d %.1f\n", row.Label, row.Hops, row.Units)
	}
	// Output:
	// outbound: [(0,1) (0,2) (0,3)]
	// return:   [(0,2) (0,1) (0,0)]
	// S0     3 4.5
	// I. SUM 3 4.5
	// RTRN   3 4.5
	// F. SUM 6 9.0
}

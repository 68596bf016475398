package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pickroute/bfs"
	"github.com/katalvlaran/pickroute/gridgraph"
)

// ExampleGrid_traversal demonstrates BFS layering on an open 3×3 floor.
// Cells are visited in non-decreasing Manhattan distance, N/E/S/W within a layer.
func ExampleGrid_traversal() {
	g, _ := gridgraph.New(3, 3)

	res, err := bfs.Grid(g, gridgraph.Point{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, i := range res.Order {
		fmt.Print(g.PointAt(i), " ")
	}
	fmt.Println()
	// Output:
	// (0,0) (1,0) (0,1) (2,0) (1,1) (0,2) (2,1) (1,2) (2,2)
}

// ExampleResult_PathTo finds the walk around a shelf.
//
//	D # P
//	. # .
//	. . .
func ExampleResult_PathTo() {
	g, _ := gridgraph.New(3, 3)
	_ = g.SetObstacle(gridgraph.Point{X: 1, Y: 0})
	_ = g.SetObstacle(gridgraph.Point{X: 1, Y: 1})

	res, _ := bfs.Grid(g, gridgraph.Point{X: 0, Y: 0})
	path, _ := res.PathTo(gridgraph.Point{X: 2, Y: 0})
	d, _ := res.Distance(gridgraph.Point{X: 2, Y: 0})

	fmt.Println("hops:", d)
	fmt.Println(path)
	// Output:
	// hops: 6
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
}

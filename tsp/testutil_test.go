package tsp_test

import (
	"math/rand"

	"github.com/katalvlaran/pickroute/tsp"
)

// table is a dense in-memory Distances used across tests.
type table [][]int

func (t table) Len() int          { return len(t) }
func (t table) Dist(i, j int) int { return t[i][j] }

// manhattan builds a table from integer points under L1 distance, which is
// what an open grid yields.
func manhattan(pts [][2]int) table {
	n := len(pts)
	t := make(table, n)
	for i := range t {
		t[i] = make([]int, n)
		for j := range t[i] {
			t[i][j] = abs(pts[i][0]-pts[j][0]) + abs(pts[i][1]-pts[j][1])
		}
	}

	return t
}

// randomTable draws n random points on a side×side lattice.
func randomTable(rnd *rand.Rand, n, side int) table {
	pts := make([][2]int, n)
	for i := range pts {
		pts[i] = [2]int{rnd.Intn(side), rnd.Intn(side)}
	}

	return manhattan(pts)
}

// withInf returns a copy of t with every pair touching v set to Inf.
func withInf(t table, v int) table {
	out := make(table, len(t))
	for i := range t {
		out[i] = append([]int(nil), t[i]...)
	}
	for i := range out {
		if i == v {
			continue
		}
		out[i][v] = tsp.Inf
		out[v][i] = tsp.Inf
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

package distmatrix

import (
	"fmt"

	"github.com/katalvlaran/pickroute/bfs"
	"github.com/katalvlaran/pickroute/gridgraph"
)

// Build computes the distance matrix over points on g. points[0] is the
// depot; the remaining points keep their order. opts are forwarded to every
// BFS run (for example a visit-counting hook).
//
// Build does not decide reachability policy: unreachable pairs are recorded
// as Inf and left to the caller.
func Build(g *gridgraph.Grid, points []gridgraph.Point, opts ...bfs.Option) (*Matrix, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	m := &Matrix{
		points: append([]gridgraph.Point(nil), points...),
		dist:   make([]int, n*n),
		trees:  make([]*bfs.Result, n),
	}

	for i, src := range points {
		res, err := bfs.Grid(g, src, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %w", ErrPointOutOfGrid, src, err)
		}
		m.trees[i] = res
		for j, dst := range points {
			d, ok := res.Distance(dst)
			if !ok {
				d = Inf
			}
			m.dist[i*n+j] = d
		}
	}

	return m, nil
}

// Len returns the number of points of interest.
func (m *Matrix) Len() int { return len(m.points) }

// Point returns the grid position of point i.
func (m *Matrix) Point(i int) gridgraph.Point { return m.points[i] }

// Points returns a copy of the point list, depot first.
func (m *Matrix) Points() []gridgraph.Point {
	return append([]gridgraph.Point(nil), m.points...)
}

// Dist returns the hop distance from point i to point j, Inf when j is not
// reachable from i. It panics on out-of-range indices like a slice would;
// use At for checked access.
func (m *Matrix) Dist(i, j int) int {
	return m.dist[i*len(m.points)+j]
}

// At is the checked form of Dist.
func (m *Matrix) At(i, j int) (int, error) {
	n := len(m.points)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrIndex
	}

	return m.dist[i*n+j], nil
}

// Tree returns the BFS result rooted at point i. Its predecessor map
// reconstructs the shortest path from point i to any reachable cell.
func (m *Matrix) Tree(i int) *bfs.Result {
	return m.trees[i]
}

// UnreachableFrom lists the indices j with Dist(i, j) == Inf, ascending.
func (m *Matrix) UnreachableFrom(i int) []int {
	var out []int
	for j := range m.points {
		if m.Dist(i, j) == Inf {
			out = append(out, j)
		}
	}

	return out
}

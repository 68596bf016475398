package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pickroute/gridgraph"
)

// randomFloor builds an n×n grid with roughly 30% obstacle cells.
func randomFloor(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rnd := rand.New(rand.NewSource(42))
	g, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x != 0 || y != 0) && rnd.Intn(10) < 3 {
				_ = g.SetObstacle(gridgraph.Point{X: x, Y: y})
			}
		}
	}

	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 1000×1000 floor.
// Complexity: O(W×H×4)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomFloor(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ConnectedComponents()
	}
}

// BenchmarkMinimalBreach measures MinimalBreach corner to corner on a 500×500 floor.
// Complexity: O(W×H)
func BenchmarkMinimalBreach(b *testing.B) {
	const n = 500
	g := randomFloor(b, n)
	src := gridgraph.Point{X: 0, Y: 0}
	dst := gridgraph.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.MinimalBreach(src, dst)
	}
}

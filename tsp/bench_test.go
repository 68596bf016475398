package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pickroute/tsp"
)

// BenchmarkNearestNeighbor measures greedy construction over 200 points.
// Complexity: O(n²)
func BenchmarkNearestNeighbor(b *testing.B) {
	d := randomTable(rand.New(rand.NewSource(1)), 200, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.NearestNeighbor(d)
	}
}

// BenchmarkConstructGreedyTwoOpt measures greedy plus 2-opt over 40 points.
func BenchmarkConstructGreedyTwoOpt(b *testing.B) {
	d := randomTable(rand.New(rand.NewSource(1)), 40, 38)
	opts := tsp.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Construct(d, opts)
	}
}

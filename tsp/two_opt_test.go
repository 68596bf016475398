package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pickroute/tsp"
)

// line places points on the x axis; distance is |xi-xj|.
func line(xs ...int) table {
	pts := make([][2]int, len(xs))
	for i, x := range xs {
		pts[i] = [2]int{x, 0}
	}

	return manhattan(pts)
}

// TestTwoOpt_KnownMove checks a single accepted reversal and the resulting
// local optimum. The adjacent swap that would reach cost 3 is outside the
// neighborhood, so the search stops at 5.
func TestTwoOpt_KnownMove(t *testing.T) {
	d := line(0, 3, 1, 2)
	res, err := tsp.TwoOpt(d, []int{0, 1, 2, 3}, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2, 1}, res.Tour)
	assert.Equal(t, 5, res.Cost)
	assert.Equal(t, 1, res.Moves)
}

// TestTwoOpt_TiesRejected leaves a tour alone when every reversal costs the same.
func TestTwoOpt_TiesRejected(t *testing.T) {
	const n = 6
	d := make(table, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = 1
			}
		}
	}
	in := tsp.SequentialTour(n)
	res, err := tsp.TwoOpt(d, in, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, in, res.Tour)
	assert.Zero(t, res.Moves)
}

// TestTwoOpt_DoesNotMutateInput keeps the caller's slice intact.
func TestTwoOpt_DoesNotMutateInput(t *testing.T) {
	in := []int{0, 1, 2, 3}
	_, err := tsp.TwoOpt(line(0, 3, 1, 2), in, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, in)
}

// TestTwoOpt_SmallTours are returned unchanged.
func TestTwoOpt_SmallTours(t *testing.T) {
	for n := 1; n <= 3; n++ {
		d := randomTable(rand.New(rand.NewSource(int64(n))), n, 10)
		res, err := tsp.TwoOpt(d, tsp.SequentialTour(n), tsp.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, tsp.SequentialTour(n), res.Tour)
		assert.Zero(t, res.Moves)
	}
}

// TestTwoOpt_InvalidTour rejects tours that do not start at the depot.
func TestTwoOpt_InvalidTour(t *testing.T) {
	_, err := tsp.TwoOpt(line(0, 1, 2), []int{1, 0, 2}, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

// TestTwoOpt_Monotone checks on random tables that the result is a valid
// tour, never costlier than the input, and stable under a second pass.
func TestTwoOpt_Monotone(t *testing.T) {
	rnd := rand.New(rand.NewSource(2024))
	for k := 0; k < 60; k++ {
		n := 4 + rnd.Intn(9)
		d := randomTable(rnd, n, 25)
		start := tsp.SequentialTour(n)
		rnd.Shuffle(n-1, func(a, b int) { start[a+1], start[b+1] = start[b+1], start[a+1] })

		res, err := tsp.TwoOpt(d, start, tsp.DefaultOptions())
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(res.Tour, n))
		require.Equal(t, 0, res.Tour[0])
		require.LessOrEqual(t, res.Cost, tsp.TourCost(d, start))
		require.Equal(t, tsp.TourCost(d, res.Tour), res.Cost)

		again, err := tsp.TwoOpt(d, res.Tour, tsp.DefaultOptions())
		require.NoError(t, err)
		require.Zero(t, again.Moves, "a local optimum admits no improving move")
	}
}

// TestTwoOpt_MaxIters caps the number of accepted moves.
func TestTwoOpt_MaxIters(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	d := randomTable(rnd, 12, 40)
	start := []int{0, 11, 1, 10, 2, 9, 3, 8, 4, 7, 5, 6}

	opts := tsp.DefaultOptions()
	opts.TwoOptMaxIters = 1
	res, err := tsp.TwoOpt(d, start, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Moves, 1)
}

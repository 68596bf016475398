// Package tsp - 2-opt local search on an open pick tour.
//
// TwoOpt performs deterministic first-improvement 2-opt:
//   - Scan pairs (i, j) with 1 ≤ i ≤ n−3 and i+2 ≤ j ≤ n−1 (the adjacent
//     case j = i+1 is skipped), in that order.
//   - Reverse tour[i..j] inclusive and recompute the whole tour cost by
//     summing consecutive legs (Inf on the first missing leg).
//   - Adopt the reversal only if the cost is strictly smaller, then restart
//     the scan from the beginning. Ties are not improvements.
//   - Stop after a full scan without an accepted move.
//
// Contracts:
//   - tour satisfies ValidateTour for n = d.Len(); position 0 (the depot)
//     never moves.
//   - Only d is read; the grid is never consulted.
//
// Termination: every accepted move strictly lowers a non-negative integer
// cost, so the number of accepted moves is bounded by the initial cost
// (or, from an Inf start, by the first finite cost reached).
//
// Complexity:
//   - One scan: O(n²) candidates × O(n) evaluation = O(n³).
//   - Overall: O(moves·n³) time, O(n) extra space.
package tsp

// TwoOpt improves tour under d and returns the local optimum, its cost and
// the number of accepted reversals. The input slice is not modified.
func TwoOpt(d Distances, tour []int, opts Options) (Result, error) {
	n := d.Len()
	if err := ValidateTour(tour, n); err != nil {
		return Result{}, err
	}

	cur := CopyTour(tour)
	cost := TourCost(d, cur)
	maxIters := opts.TwoOptMaxIters // 0 ⇒ unlimited (until local optimum)
	accepted := 0

	for {
		improved := false

		var i, j int
		for i = 1; i <= n-3 && !improved; i++ {
			for j = i + 1; j <= n-1; j++ {
				if j == i+1 {
					continue
				}
				reverseInPlace(cur, i, j)
				if c := TourCost(d, cur); c < cost {
					cost = c
					accepted++
					improved = true
					break
				}
				// not improving: undo
				reverseInPlace(cur, i, j)
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighborhood.
			break
		}
		if maxIters > 0 && accepted >= maxIters {
			break
		}
	}

	return Result{Tour: cur, Cost: cost, Moves: accepted}, nil
}

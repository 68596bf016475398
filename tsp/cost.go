package tsp

// TourCost sums d(tour[k], tour[k+1]) over consecutive pairs of an open
// tour. It short-circuits to Inf on the first missing leg, so an infinite
// tour never overflows.
//
// Complexity: O(n).
func TourCost(d Distances, tour []int) int {
	total := 0
	for k := 0; k+1 < len(tour); k++ {
		leg := d.Dist(tour[k], tour[k+1])
		if leg == Inf {
			return Inf
		}
		total += leg
	}

	return total
}

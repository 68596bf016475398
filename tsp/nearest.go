package tsp

// NearestNeighbor builds a greedy tour from the depot: repeatedly append the
// unvisited point closest to the current tour end. Candidates are scanned in
// ascending index order with a strict comparison, so ties go to the lowest
// index.
//
// If every unvisited point is at Inf from the current end, construction
// stops with ErrUnreachable and no tour is returned.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(d Distances) ([]int, error) {
	n := d.Len()
	if n == 0 {
		return nil, ErrTooFewPoints
	}
	visited := make([]bool, n)
	visited[0] = true
	tour := make([]int, 1, n)
	cur := 0

	for len(tour) < n {
		best, next := Inf, -1
		for c := 1; c < n; c++ {
			if visited[c] {
				continue
			}
			if dc := d.Dist(cur, c); dc < best {
				best, next = dc, c
			}
		}
		if next < 0 {
			return nil, ErrUnreachable
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour, nil
}

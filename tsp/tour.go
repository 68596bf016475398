// Package tsp — tour utilities shared by constructors and the improver.
//
// A tour here is open: [0, p1, p2, …, pk] with the depot first and the
// return leg kept out of the sequence. Helpers operate purely on index
// sequences and never touch the grid.
package tsp

import (
	"strconv"
	"strings"
)

// ValidateTour enforces the tour invariant for a table of n points:
//
//	len(tour) == n, tour[0] == 0,
//	each index v∈[0..n-1] appears exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	if tour[0] != 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// SequentialTour returns [0, 1, …, n-1].
func SequentialTour(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// reverseInPlace reverses the inclusive segment tour[i..k].
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	return append([]int(nil), tour...)
}

// DebugString renders a tour with the implied return leg, e.g. "[0 3 1 2 → 0]".
func DebugString(tour []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range tour {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	if len(tour) > 0 {
		b.WriteString(" → ")
		b.WriteString(strconv.Itoa(tour[0]))
	}
	b.WriteByte(']')

	return b.String()
}

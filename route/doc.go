// Package route turns a tour over a distance matrix into concrete cell
// sequences: the walk a picker actually performs.
//
// What
//
//   - For each consecutive tour pair (u, v) the destination's predecessor
//     chain in row u's BFS tree is walked back to u and reversed. The leg
//     excludes u's cell and includes v's cell, so its length equals the
//     matrix distance d(u, v).
//   - Outbound legs are tagged Picking and concatenated in tour order.
//   - Exactly one Return leg runs from the last tour point back to the
//     depot. It is kept apart from the outbound legs so a caller can hold it
//     until the outbound walk has been shown.
//   - The destination of outbound leg k receives visit order k+1. The depot
//     never receives one.
//
// Materialize never touches the grid; visit orders are returned in the
// Route and applied by the caller. Calling it twice with the same inputs
// yields equal Routes.
//
// Leg statistics
//
//	Route.Table renders per-leg hop counts and physical distances:
//
//	  S0 … Sk-1   one row per outbound leg
//	  I. SUM      outbound total
//	  RTRN        return leg
//	  F. SUM      grand total
//
// Errors
//
//   - ErrEmptyTour   for a nil or empty tour.
//   - ErrBrokenChain when a predecessor chain does not lead back to the
//     origin (the pair is unreachable).
//   - tsp.ErrDimensionMismatch (wrapped) when the tour is not a permutation
//     of the matrix indices starting at the depot.
package route

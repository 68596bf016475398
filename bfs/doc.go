// Package bfs is the shortest-path oracle of the route planner: an
// unweighted breadth-first search over the open cells of a gridgraph.Grid.
//
// What
//
//   - Explore cells in non-decreasing hop distance from a source cell,
//     moving N/E/S/W through non-obstacle cells only.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist:  hop count from the source per row-major cell index
//   - Prev:  predecessor on a shortest path per cell index
//   - Optional OnVisit hook and MaxDepth limit.
//
// Why
//
//   - On an unweighted lattice BFS yields exact shortest hop counts in O(V).
//   - Distances and predecessor links live in per-run slices keyed by arena
//     index, never on the cells themselves, so a run can never observe a
//     stale parent pointer from an earlier run.
//
// Determinism
//
//	Neighbors are expanded in the fixed N, E, S, W order, so the visit
//	sequence and every reconstructed path are fully reproducible.
//
// Complexity (V = W×H cells)
//
//   - Time:   O(V)   (each cell enqueued at most once, ≤4 neighbors)
//   - Memory: O(V)   (queue, Dist, Prev)
//
// Usage
//
//	res, err := bfs.Grid(g, gridgraph.Point{X: 0, Y: 0})
//	if err != nil {
//	    // ErrGridNil, ErrSourceOutOfBounds, ErrSourceBlocked or ErrOptionViolation
//	}
//	path, err := res.PathTo(gridgraph.Point{X: 5, Y: 3})
//
// Errors
//
//   - ErrGridNil             if the grid pointer is nil.
//   - ErrSourceOutOfBounds   if the source lies outside the grid.
//   - ErrSourceBlocked       if the source is an obstacle.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached          from PathTo for unreachable destinations.
package bfs

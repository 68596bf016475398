// Package distmatrix builds the all-pairs walking-distance table between
// points of interest on a gridgraph.Grid.
//
// What:
//
//   - Build runs bfs.Grid once per point of interest (depot first, then the
//     pick points in insertion order) and records, for every other point,
//     its hop distance or Inf when it is not reachable.
//   - Each row keeps its bfs.Result: the predecessor map is what the route
//     materializer walks to turn a tour into concrete cell paths, so rows are
//     retained for the lifetime of one planning request.
//
// Complexity:
//
//   - Build: O(n·V) time, O(n·V) memory, n = points, V = W×H cells.
//   - Dist / Tree: O(1).
//
// Errors:
//
//   - ErrTooFewPoints:   fewer than two points (nothing beyond the depot).
//   - ErrPointOutOfGrid: a point lies outside the grid or on an obstacle.
//   - ErrIndex:          row/column index outside [0, n).
package distmatrix

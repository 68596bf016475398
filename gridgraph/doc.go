// Package gridgraph treats a warehouse floor as a graph of grid cells,
// the substrate for route planning.
//
// What:
//
//   - Grid is a fixed W×H lattice; each cell links to ≤4 orthogonal neighbors.
//   - Cells carry obstacle, depot and pick-point flags plus a visit order.
//   - Obstacle status takes precedence: marking an obstacle clears the
//     depot/pick-point role of that cell.
//   - Pick points are kept in insertion order; PointsOfInterest returns the
//     depot first, then the pick points, which is the index order used by
//     distmatrix and tsp.
//   - ConnectedComponents labels open regions; MinimalBreach finds the
//     fewest obstacle cells separating two cells (0-1 BFS).
//
// Why:
//
//   - Order pickers walk in aisles; shelves are obstacles.
//   - Arena indices (row-major) let bfs keep per-run state in flat slices
//     rather than on the cells themselves.
//
// Complexity:
//
//   - New / Reset:          O(W×H), Memory: O(W×H).
//   - Neighbors:            O(1).
//   - ConnectedComponents:  O(W×H×4), Memory: O(W×H).
//   - MinimalBreach:        O(W×H),   Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:     non-positive width or height.
//   - ErrOutOfBounds:   coordinate outside the grid.
//   - ErrObstacle:      depot or pick point requested on an obstacle.
//   - ErrDepotCell:     pick point requested on the depot.
//   - ErrPickPointCell: depot requested on a pick point.
//   - ErrNoPath:        no breach walk exists (never on a non-empty grid).
package gridgraph

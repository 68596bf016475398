// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/pickroute.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a requested grid with no columns or no rows.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one column and one row")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrObstacle indicates an operation that requires an open cell hit an obstacle.
	ErrObstacle = errors.New("gridgraph: cell is an obstacle")
	// ErrDepotCell indicates an operation that cannot target the depot cell.
	ErrDepotCell = errors.New("gridgraph: cell is the depot")
	// ErrPickPointCell indicates an operation that cannot target a pick point.
	ErrPickPointCell = errors.New("gridgraph: cell is a pick point")
	// ErrNoPath indicates no breach path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Point addresses a cell by column (X) and row (Y).
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a single lattice cell and its editable flags.
// Obstacle takes precedence over Depot and PickPoint: the grid never holds
// a cell that is both an obstacle and a point of interest.
// VisitOrder is the 1-based position of a pick point in the last planned
// tour; 0 means unassigned.
type Cell struct {
	X, Y       int
	Obstacle   bool
	Depot      bool
	PickPoint  bool
	VisitOrder int
}

// Point returns the coordinates of c.
func (c Cell) Point() Point { return Point{X: c.X, Y: c.Y} }

// Open reports whether c can be walked through.
func (c Cell) Open() bool { return !c.Obstacle }

// Grid is a fixed-size W×H lattice with 4-connectivity.
// Topology (Width, Height, neighbor offsets) is fixed at construction;
// cell flags are mutable through the methods in gridgraph.go.
// Cells are stored row-major; the row-major index is the arena key used by
// bfs and distmatrix.
type Grid struct {
	Width, Height int

	cells           []Cell
	depot           int   // arena index of the depot, -1 if none
	picks           []int // pick points in insertion order
	neighborOffsets [][2]int
}

package distmatrix

import (
	"errors"
	"math"

	"github.com/katalvlaran/pickroute/bfs"
	"github.com/katalvlaran/pickroute/gridgraph"
)

// Inf is the distance recorded between two points with no walkable path.
const Inf = math.MaxInt

// Sentinel errors for matrix construction and access.
var (
	// ErrTooFewPoints indicates no point of interest beyond the depot.
	ErrTooFewPoints = errors.New("distmatrix: need the depot and at least one more point")
	// ErrPointOutOfGrid indicates a point outside the grid or on an obstacle.
	ErrPointOutOfGrid = errors.New("distmatrix: point is not an open grid cell")
	// ErrIndex indicates a row or column index outside [0, n).
	ErrIndex = errors.New("distmatrix: index out of range")
)

// Matrix is the n×n hop-count table over points of interest together with
// the per-row predecessor maps. Index 0 is the depot.
// A Matrix is immutable once built.
type Matrix struct {
	points []gridgraph.Point
	dist   []int // row-major n×n
	trees  []*bfs.Result
}

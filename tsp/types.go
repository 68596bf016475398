package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Inf marks a missing leg in a Distances table. It matches distmatrix.Inf.
const Inf = math.MaxInt

// Sentinel errors shared by constructors and the improver.
var (
	// ErrDimensionMismatch signals a tour that does not fit the table: wrong
	// length, out-of-range index, repeated index, or not starting at 0.
	ErrDimensionMismatch = errors.New("tsp: tour does not match distance table")

	// ErrTooFewPoints is returned for an empty distance table.
	ErrTooFewPoints = errors.New("tsp: distance table is empty")

	// ErrUnreachable is returned by NearestNeighbor when every unvisited
	// point is at Inf from the current tour end.
	ErrUnreachable = errors.New("tsp: unreachable points")

	// ErrUnsupportedAlgorithm is returned for an unknown Algo value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// Distances is the read-only view of an n×n hop table the heuristics need.
// Index 0 is the depot. Dist returns Inf for pairs with no path.
// *distmatrix.Matrix satisfies it.
type Distances interface {
	Len() int
	Dist(i, j int) int
}

// Algo selects the tour constructor.
type Algo int

const (
	// Sequential keeps the input order: depot, then pick points as added.
	Sequential Algo = iota
	// Greedy builds a nearest-neighbor tour from the depot.
	Greedy
)

// String returns the lower-case algorithm name.
func (a Algo) String() string {
	switch a {
	case Sequential:
		return "sequential"
	case Greedy:
		return "greedy"
	default:
		return fmt.Sprintf("algo(%d)", int(a))
	}
}

// ParseAlgo maps a name to an Algo. Matching is case-insensitive and also
// accepts "sequence" for Sequential.
func ParseAlgo(s string) (Algo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "sequence":
		return Sequential, nil
	case "greedy", "nearest", "nearest-neighbor":
		return Greedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Options configures Construct.
//   - Algo: tour constructor.
//   - EnableLocalSearch: run TwoOpt after the Greedy constructor. Sequential
//     is a baseline and is never improved.
//   - TwoOptMaxIters: bound on accepted 2-opt moves; 0 means unlimited.
type Options struct {
	Algo              Algo
	EnableLocalSearch bool
	TwoOptMaxIters    int
}

// DefaultOptions returns Greedy with 2-opt enabled and no move bound.
func DefaultOptions() Options {
	return Options{
		Algo:              Greedy,
		EnableLocalSearch: true,
		TwoOptMaxIters:    0,
	}
}

// Result holds the outcome of a constructor or the improver.
type Result struct {
	// Tour is the visiting order, depot (0) first, each index once.
	// The return to the depot is implied and not part of the tour.
	Tour []int

	// Cost is the sum of consecutive legs of Tour; Inf if any leg is missing.
	Cost int

	// Moves counts accepted 2-opt reversals (0 when no improver ran).
	Moves int
}

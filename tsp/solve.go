// Package tsp - dispatcher for the pick-tour pipeline.
//
// Construct routes to the requested constructor and, for Greedy, applies the
// optional 2-opt post-pass:
//
//   - Sequential: input order, no optimization (baseline).
//   - Greedy:     NearestNeighbor, then TwoOpt when EnableLocalSearch.
package tsp

// Construct builds a tour over the n = d.Len() points of d according to opts.
//
// Errors: ErrTooFewPoints, ErrUnreachable (Greedy only),
// ErrUnsupportedAlgorithm.
func Construct(d Distances, opts Options) (Result, error) {
	n := d.Len()
	if n == 0 {
		return Result{}, ErrTooFewPoints
	}

	switch opts.Algo {
	case Sequential:
		tour := SequentialTour(n)

		return Result{Tour: tour, Cost: TourCost(d, tour)}, nil

	case Greedy:
		tour, err := NearestNeighbor(d)
		if err != nil {
			return Result{}, err
		}
		if !opts.EnableLocalSearch || n < 4 {
			return Result{Tour: tour, Cost: TourCost(d, tour)}, nil
		}

		return TwoOpt(d, tour, opts)

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

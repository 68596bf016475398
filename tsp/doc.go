// Package tsp sequences the points of interest of a pick run into a short
// open tour: depot first, every pick point exactly once, with the return
// to the depot handled by the caller.
//
// It includes:
//
//   - SequentialTour / Sequential — input order, the unoptimised baseline.
//   - NearestNeighbor / Greedy    — greedy construction, lowest index wins ties.
//   - TwoOpt                      — first-improvement segment reversal.
//
// All functions read distances through the Distances interface; math.MaxInt
// (Inf) signals "no walkable path". The heuristics never see the grid.
//
// TwoOpt finds a local, not global, optimum: the cost never increases and the
// search terminates because every accepted move lowers an integer cost.
package tsp

// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pickroute/gridgraph"
)

// Unreached marks a cell the search never reached in Result.Dist,
// and the absence of a predecessor in Result.Prev.
const Unreached = -1

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrSourceOutOfBounds is returned when the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("bfs: source out of bounds")

	// ErrSourceBlocked is returned when the source cell is an obstacle.
	ErrSourceBlocked = errors.New("bfs: source cell is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for cells outside the reachable set.
	ErrNotReached = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a cell is dequeued, with its hop distance.
	OnVisit func(p gridgraph.Point, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(gridgraph.Point, int) {},
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is one run's distance/predecessor map, keyed by row-major cell
// index of the grid it was computed on:
//   - Source: the cell the search started from.
//   - Order:  reached cells in visit sequence.
//   - Dist:   hop count from Source, Unreached if not reached.
//   - Prev:   predecessor on a shortest path, Unreached for Source and
//     unreached cells.
//
// A Result never aliases cell state, so it stays valid after later runs.
type Result struct {
	Source int
	Order  []int
	Dist   []int
	Prev   []int

	width int
}

// index maps p to the arena key, or -1 when p lies outside the searched grid.
func (r *Result) index(p gridgraph.Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= r.width {
		return -1
	}
	i := p.Y*r.width + p.X
	if i >= len(r.Dist) {
		return -1
	}

	return i
}

func (r *Result) point(i int) gridgraph.Point {
	return gridgraph.Point{X: i % r.width, Y: i / r.width}
}

// Reached reports whether p is in the reachable set.
func (r *Result) Reached(p gridgraph.Point) bool {
	i := r.index(p)

	return i >= 0 && r.Dist[i] != Unreached
}

// Distance returns the hop count from the source to p.
func (r *Result) Distance(p gridgraph.Point) (int, bool) {
	i := r.index(p)
	if i < 0 || r.Dist[i] == Unreached {
		return 0, false
	}

	return r.Dist[i], true
}

// PathTo reconstructs the shortest path from the source to dest,
// both endpoints included. Returns ErrNotReached if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Point) ([]gridgraph.Point, error) {
	i := r.index(dest)
	if i < 0 || r.Dist[i] == Unreached {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := make([]gridgraph.Point, 0, r.Dist[i]+1)
	for cur := i; cur != Unreached; cur = r.Prev[cur] {
		path = append(path, r.point(cur))
	}
	// reverse to get source → dest
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}

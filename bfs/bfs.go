// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest-path distances and predecessor links
// for every reachable cell.
package bfs

import (
	"github.com/katalvlaran/pickroute/gridgraph"
)

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	queue []int
	nbuf  []int
	res   *Result
}

// Grid runs breadth-first search on g from src through open cells,
// applying any number of functional Options.
// Every call allocates a fresh Result; no predecessor state survives
// between runs.
// Returns ErrGridNil, ErrSourceOutOfBounds or ErrSourceBlocked for invalid
// input and ErrOptionViolation for bad options. An isolated source is not an
// error: the Result then holds only the source.
func Grid(g *gridgraph.Grid, src gridgraph.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(src) {
		return nil, ErrSourceOutOfBounds
	}
	s := g.Index(src.X, src.Y)
	if !g.IsOpen(s) {
		return nil, ErrSourceBlocked
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]int, 0, n),
		nbuf:  make([]int, 0, 4),
		res: &Result{
			Source: s,
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Prev:   make([]int, n),
			width:  g.Width,
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unreached
		w.res.Prev[i] = Unreached
	}

	w.enqueue(s, 0, Unreached)
	w.loop()

	return w.res, nil
}

// enqueue records distance and parent for idx and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.Dist[idx] = d
	w.res.Prev[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty. The queue is consumed by head index
// so the backing array is never re-sliced away.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		d := w.res.Dist[u]
		w.res.Order = append(w.res.Order, u)
		w.opts.OnVisit(w.grid.PointAt(u), d)

		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, v := range w.grid.Neighbors(u, w.nbuf[:0]) {
			if w.res.Dist[v] != Unreached || !w.grid.IsOpen(v) {
				continue
			}
			w.enqueue(v, d+1, u)
		}
	}
}

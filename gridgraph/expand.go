package gridgraph

import (
	"container/list"
)

// MinimalBreach finds a walk from src to dst that passes through the fewest
// obstacle cells. Each obstacle entered costs 1, open cells cost 0.
// Returns the walk (including src and dst) and the obstacle cells on it,
// in walk order. For two connected cells the breach list is empty.
//
// Behavior:
//  1. Validate both endpoints.
//  2. 0–1 BFS from src:
//     • Moving into an open cell     → cost 0
//     • Moving into an obstacle cell → cost 1
//  3. Stop when dst is dequeued.
//  4. Reconstruct the walk via the predecessor slice.
//
// Complexity: O(W·H) time, O(W·H) memory for distance and prev slices.
func (g *Grid) MinimalBreach(src, dst Point) (path, breaches []Point, err error) {
	if !g.Contains(src) || !g.Contains(dst) {
		return nil, nil, ErrOutOfBounds
	}

	N := g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	s, t := g.Index(src.X, src.Y), g.Index(dst.X, dst.Y)
	dist[s] = 0
	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(s)
	nbuf := make([]int, 0, 4)
	found := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == t {
			found = true
			break
		}
		for _, v := range g.Neighbors(u, nbuf[:0]) {
			step := 0
			if !g.IsOpen(v) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, nil, ErrNoPath
	}
	for at := t; at >= 0; at = prev[at] {
		path = append(path, g.PointAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, p := range path {
		if !g.IsOpen(g.Index(p.X, p.Y)) {
			breaches = append(breaches, p)
		}
	}

	return path, breaches, nil
}

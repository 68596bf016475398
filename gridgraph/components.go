package gridgraph

// ConnectedComponents labels every contiguous region of open cells under
// 4-connectivity. The returned slice maps each row-major cell index to its
// region label (0..count-1); obstacle cells carry -1.
//
// Two open cells share a label iff one can walk to the other, which is
// what the planner uses to explain unreachable pick points.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the queue.
func (g *Grid) ConnectedComponents() (labels []int, count int) {
	total := g.Len()
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, total)
	nbuf := make([]int, 0, 4)

	for i0 := 0; i0 < total; i0++ {
		if !g.IsOpen(i0) || labels[i0] >= 0 {
			continue
		}
		// BFS to flood the region
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.Neighbors(u, nbuf[:0]) {
				if g.IsOpen(v) && labels[v] < 0 {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return labels, count
}

// Connected reports whether a and b lie in the same open region.
// Obstacles are never connected to anything.
func (g *Grid) Connected(a, b Point) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	labels, _ := g.ConnectedComponents()
	la, lb := labels[g.Index(a.X, a.Y)], labels[g.Index(b.X, b.Y)]

	return la >= 0 && la == lb
}

// Package gridgraph models the facility floor as a fixed W×H lattice of
// cells with 4-directional connectivity. It supports:
//
//   - Obstacle / depot / pick-point flags with obstacle precedence
//   - Pick points kept in insertion order (the tour's index order)
//   - Row-major arena indices for allocation-free traversals
//   - Identification of connected open regions
//   - Minimal obstacle breaches between two cells
package gridgraph

// New constructs a Width×Height grid with every cell open and the depot at
// (0,0). Returns ErrEmptyGrid if either dimension is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
		// N, E, S, W
		neighborOffsets: [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}
	g.Reset()

	return g, nil
}

// Reset clears every flag and visit order, drops all pick points and puts
// the depot back at (0,0).
// Complexity: O(W×H).
func (g *Grid) Reset() {
	for i := range g.cells {
		x, y := g.Coordinate(i)
		g.cells[i] = Cell{X: x, Y: y}
	}
	g.picks = g.picks[:0]
	g.depot = 0
	g.cells[0].Depot = true
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Point) bool { return g.InBounds(p.X, p.Y) }

// Len returns the number of cells, W×H.
func (g *Grid) Len() int { return len(g.cells) }

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// PointAt converts a row-major index to a Point.
func (g *Grid) PointAt(idx int) Point {
	x, y := g.Coordinate(idx)
	return Point{X: x, Y: y}
}

// NeighborOffsets returns the fixed N, E, S, W offsets.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors appends to buf the row-major indices of the in-bounds
// orthogonal neighbors of idx, in N, E, S, W order, and returns it.
// Obstacles are included; callers filter with IsOpen.
// Complexity: O(1).
func (g *Grid) Neighbors(idx int, buf []int) []int {
	x, y := g.Coordinate(idx)
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			buf = append(buf, g.Index(nx, ny))
		}
	}

	return buf
}

// IsOpen reports whether the cell at idx can be walked through.
func (g *Grid) IsOpen(idx int) bool {
	return !g.cells[idx].Obstacle
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Point) (Cell, error) {
	if !g.Contains(p) {
		return Cell{}, ErrOutOfBounds
	}

	return g.cells[g.Index(p.X, p.Y)], nil
}

// SetObstacle marks p as an obstacle. Obstacle status takes precedence:
// a depot or pick point at p loses that role (and its visit order).
func (g *Grid) SetObstacle(p Point) error {
	if !g.Contains(p) {
		return ErrOutOfBounds
	}
	i := g.Index(p.X, p.Y)
	c := &g.cells[i]
	if c.PickPoint {
		g.removePick(i)
	}
	if c.Depot {
		g.depot = -1
	}
	c.Obstacle = true
	c.Depot = false
	c.PickPoint = false
	c.VisitOrder = 0

	return nil
}

// ClearObstacle reopens p. It is a no-op for cells that are already open.
func (g *Grid) ClearObstacle(p Point) error {
	if !g.Contains(p) {
		return ErrOutOfBounds
	}
	g.cells[g.Index(p.X, p.Y)].Obstacle = false

	return nil
}

// SetDepot moves the depot to p. The previous depot cell, if any, becomes a
// plain open cell. Obstacles and pick points cannot host the depot.
func (g *Grid) SetDepot(p Point) error {
	if !g.Contains(p) {
		return ErrOutOfBounds
	}
	i := g.Index(p.X, p.Y)
	switch {
	case g.cells[i].Obstacle:
		return ErrObstacle
	case g.cells[i].PickPoint:
		return ErrPickPointCell
	}
	if g.depot >= 0 {
		g.cells[g.depot].Depot = false
	}
	g.cells[i].Depot = true
	g.depot = i

	return nil
}

// Depot returns the depot position, if one is set.
func (g *Grid) Depot() (Point, bool) {
	if g.depot < 0 {
		return Point{}, false
	}

	return g.PointAt(g.depot), true
}

// AddPickPoint appends p to the pick list. Adding an existing pick point is
// a no-op; obstacles and the depot are rejected.
func (g *Grid) AddPickPoint(p Point) error {
	if !g.Contains(p) {
		return ErrOutOfBounds
	}
	i := g.Index(p.X, p.Y)
	c := &g.cells[i]
	switch {
	case c.Obstacle:
		return ErrObstacle
	case c.Depot:
		return ErrDepotCell
	case c.PickPoint:
		return nil
	}
	c.PickPoint = true
	g.picks = append(g.picks, i)

	return nil
}

// RemovePickPoint drops p from the pick list and clears its visit order.
// Removing a cell that is not a pick point is a no-op.
func (g *Grid) RemovePickPoint(p Point) error {
	if !g.Contains(p) {
		return ErrOutOfBounds
	}
	i := g.Index(p.X, p.Y)
	if !g.cells[i].PickPoint {
		return nil
	}
	g.removePick(i)
	g.cells[i].PickPoint = false
	g.cells[i].VisitOrder = 0

	return nil
}

// TogglePickPoint adds p when absent and removes it when present.
// It reports whether p is a pick point afterwards.
func (g *Grid) TogglePickPoint(p Point) (bool, error) {
	c, err := g.Cell(p)
	if err != nil {
		return false, err
	}
	if c.PickPoint {
		return false, g.RemovePickPoint(p)
	}
	if err = g.AddPickPoint(p); err != nil {
		return false, err
	}

	return true, nil
}

func (g *Grid) removePick(idx int) {
	for k, v := range g.picks {
		if v == idx {
			g.picks = append(g.picks[:k], g.picks[k+1:]...)
			return
		}
	}
}

// PickPoints returns the pick points in insertion order.
func (g *Grid) PickPoints() []Point {
	out := make([]Point, len(g.picks))
	for k, i := range g.picks {
		out[k] = g.PointAt(i)
	}

	return out
}

// Obstacles returns every obstacle cell in row-major order.
func (g *Grid) Obstacles() []Point {
	var out []Point
	for i := range g.cells {
		if g.cells[i].Obstacle {
			out = append(out, g.PointAt(i))
		}
	}

	return out
}

// PointsOfInterest returns the depot followed by the pick points in
// insertion order. ok is false when no depot is set.
func (g *Grid) PointsOfInterest() (poi []Point, ok bool) {
	d, ok := g.Depot()
	if !ok {
		return nil, false
	}
	poi = make([]Point, 0, len(g.picks)+1)
	poi = append(poi, d)

	return append(poi, g.PickPoints()...), true
}

// SetVisitOrder records the 1-based tour position of pick point p.
func (g *Grid) SetVisitOrder(p Point, order int) error {
	if !g.Contains(p) {
		return ErrOutOfBounds
	}
	c := &g.cells[g.Index(p.X, p.Y)]
	if !c.PickPoint {
		return nil
	}
	c.VisitOrder = order

	return nil
}

// ClearVisitOrders resets the visit order of every pick point.
func (g *Grid) ClearVisitOrders() {
	for _, i := range g.picks {
		g.cells[i].VisitOrder = 0
	}
}

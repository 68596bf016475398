package layout

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pickroute/gridgraph"
)

// errDuplicateSpawn reports a second spawn record in one layout.
var errDuplicateSpawn = errors.New("duplicate spawn")

// Apply resets g and loads records onto it. Walls go first, then the spawn,
// then targets, so a layout written by Snapshot always loads back.
// The returned error joins one *RecordError per rejected record.
func Apply(g *gridgraph.Grid, records []Record) error {
	g.Reset()

	var errs []error
	reject := func(i int, err error) {
		errs = append(errs, &RecordError{Index: i, Record: records[i], Err: err})
	}

	// tags are normalised once, up front; "" marks a rejected record
	tags := make([]Tag, len(records))
	for i, r := range records {
		tag, err := ParseTag(string(r.Tag))
		if err != nil {
			reject(i, err)
			continue
		}
		if !g.InBounds(r.Col, r.Row) {
			reject(i, fmt.Errorf("%w: (%d,%d) on %dx%d grid", gridgraph.ErrOutOfBounds, r.Col, r.Row, g.Width, g.Height))
			continue
		}
		tags[i] = tag
	}

	for i, r := range records {
		if tags[i] == TagWall {
			_ = g.SetObstacle(gridgraph.Point{X: r.Col, Y: r.Row})
		}
	}

	spawned := false
	for i, r := range records {
		if tags[i] != TagSpawn {
			continue
		}
		if spawned {
			reject(i, errDuplicateSpawn)
			continue
		}
		if err := g.SetDepot(gridgraph.Point{X: r.Col, Y: r.Row}); err != nil {
			reject(i, err)
			continue
		}
		spawned = true
	}

	for i, r := range records {
		if tags[i] != TagTarget {
			continue
		}
		if _, err := g.TogglePickPoint(gridgraph.Point{X: r.Col, Y: r.Row}); err != nil {
			reject(i, err)
		}
	}

	return errors.Join(errs...)
}

// Snapshot captures g as records: walls row-major, targets in insertion
// order, then the spawn. A grid without a depot is written with spawn (0,0),
// or with no spawn at all when (0,0) is a wall.
func Snapshot(g *gridgraph.Grid) []Record {
	walls := g.Obstacles()
	picks := g.PickPoints()
	out := make([]Record, 0, len(walls)+len(picks)+1)
	for _, p := range walls {
		out = append(out, Record{Tag: TagWall, Col: p.X, Row: p.Y})
	}
	for _, p := range picks {
		out = append(out, Record{Tag: TagTarget, Col: p.X, Row: p.Y})
	}
	d, ok := g.Depot()
	if !ok {
		// fall back to the reset position unless a wall took it
		if c, err := g.Cell(d); err != nil || c.Obstacle {
			return out
		}
	}
	out = append(out, Record{Tag: TagSpawn, Col: d.X, Row: d.Y})

	return out
}

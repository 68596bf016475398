package route

import (
	"errors"

	"github.com/katalvlaran/pickroute/gridgraph"
)

var (
	// ErrEmptyTour is returned for a nil or empty tour.
	ErrEmptyTour = errors.New("route: empty tour")
	// ErrBrokenChain is returned when a leg's predecessor chain does not
	// reach its origin.
	ErrBrokenChain = errors.New("route: predecessor chain does not reach origin")
)

// LegKind tags a leg (and each of its segments) as outbound or return.
type LegKind int

const (
	// Picking marks the outbound walk between pick points.
	Picking LegKind = iota
	// Return marks the walk from the last pick point back to the depot.
	Return
)

// String returns the display tag of k.
func (k LegKind) String() string {
	switch k {
	case Picking:
		return "PICKING"
	case Return:
		return "RETURN"
	default:
		return "UNKNOWN"
	}
}

// Segment is one displayable step of a route.
type Segment struct {
	Cell gridgraph.Point
	Kind LegKind
}

// Leg is the walk between two consecutive tour points.
// Cells excludes the origin and includes the destination.
type Leg struct {
	From, To int // matrix indices
	Kind     LegKind
	Cells    []gridgraph.Point
	Hops     int
}

// Segments returns the leg as tagged display steps.
func (l Leg) Segments() []Segment {
	out := make([]Segment, len(l.Cells))
	for i, c := range l.Cells {
		out[i] = Segment{Cell: c, Kind: l.Kind}
	}

	return out
}

// Visit pairs a pick point with its 1-based tour position.
type Visit struct {
	Point gridgraph.Point
	Order int
}

// Route is a materialized tour.
type Route struct {
	Tour      []int
	Legs      []Leg // outbound, in tour order
	ReturnLeg Leg
	Visits    []Visit // in tour order
}

// Outbound returns every outbound segment in walking order.
func (r *Route) Outbound() []Segment {
	out := make([]Segment, 0, r.OutboundHops())
	for _, l := range r.Legs {
		out = append(out, l.Segments()...)
	}

	return out
}

// Return returns the held return segments.
func (r *Route) Return() []Segment {
	return r.ReturnLeg.Segments()
}

// OutboundHops is the summed length of the outbound legs.
func (r *Route) OutboundHops() int {
	total := 0
	for _, l := range r.Legs {
		total += l.Hops
	}

	return total
}

// ReturnHops is the length of the return leg.
func (r *Route) ReturnHops() int { return r.ReturnLeg.Hops }

// TotalHops is the full walk, return included.
func (r *Route) TotalHops() int { return r.OutboundHops() + r.ReturnHops() }

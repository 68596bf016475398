package route

import "fmt"

// Labels of the summary rows produced by Table.
const (
	LabelOutboundSum = "I. SUM"
	LabelReturn      = "RTRN"
	LabelFinalSum    = "F. SUM"
)

// TableRow is one line of the leg statistics table.
type TableRow struct {
	Label string
	Hops  int
	Units float64
}

// Table renders per-leg hop counts scaled by unit (physical distance per
// cell): one S<k> row per outbound leg, then the outbound sum, the return
// leg and the grand total.
func (r *Route) Table(unit float64) []TableRow {
	rows := make([]TableRow, 0, len(r.Legs)+3)
	for k, l := range r.Legs {
		rows = append(rows, TableRow{Label: fmt.Sprintf("S%d", k), Hops: l.Hops, Units: float64(l.Hops) * unit})
	}
	out := r.OutboundHops()
	rows = append(rows,
		TableRow{Label: LabelOutboundSum, Hops: out, Units: float64(out) * unit},
		TableRow{Label: LabelReturn, Hops: r.ReturnHops(), Units: float64(r.ReturnHops()) * unit},
		TableRow{Label: LabelFinalSum, Hops: r.TotalHops(), Units: float64(r.TotalHops()) * unit},
	)

	return rows
}

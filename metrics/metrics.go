// Package metrics instruments planning runs with Prometheus collectors.
// A nil *Recorder is valid and records nothing, so callers never need to
// guard their calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Plan outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeNoTargets   = "no_targets"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Recorder holds the planner collectors registered on one registry.
type Recorder struct {
	reg *prometheus.Registry

	plans       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	tourHops    *prometheus.HistogramVec
	twoOptMoves *prometheus.CounterVec
	bfsVisited  prometheus.Counter
}

// NewRecorder creates the planner collectors and registers them, together
// with the Go and process collectors, on reg. A nil reg gets a fresh
// dedicated registry.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Recorder{
		reg: reg,
		plans: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "pickroute_plans_total", Help: "Planning runs by mode and outcome."},
			[]string{"mode", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "pickroute_plan_duration_seconds", Help: "Planning run duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"mode"},
		),
		tourHops: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "pickroute_tour_hops", Help: "Cells walked per planned route, return leg included.", Buckets: prometheus.ExponentialBuckets(8, 2, 10)},
			[]string{"mode"},
		),
		twoOptMoves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "pickroute_two_opt_moves_total", Help: "Accepted 2-opt reversals."},
			[]string{"mode"},
		),
		bfsVisited: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "pickroute_bfs_cells_visited_total", Help: "Cells dequeued by shortest-path searches."},
		),
	}
	reg.MustRegister(r.plans, r.duration, r.tourHops, r.twoOptMoves, r.bfsVisited)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return r
}

// Registry returns the registry the collectors live on.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.reg
}

// ObservePlan records one planning run.
func (r *Recorder) ObservePlan(mode, outcome string, took time.Duration) {
	if r == nil {
		return
	}
	r.plans.WithLabelValues(mode, outcome).Inc()
	r.duration.WithLabelValues(mode).Observe(took.Seconds())
}

// ObserveRoute records the size of a successful route.
func (r *Recorder) ObserveRoute(mode string, hops, moves int) {
	if r == nil {
		return
	}
	r.tourHops.WithLabelValues(mode).Observe(float64(hops))
	r.twoOptMoves.WithLabelValues(mode).Add(float64(moves))
}

// AddVisited adds n dequeued cells.
func (r *Recorder) AddVisited(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.bfsVisited.Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

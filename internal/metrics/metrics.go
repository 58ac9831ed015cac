// Package metrics carries the ambient observability surface every
// placement run reports through: a set of prometheus.Gauge/Counter/
// Histogram collectors, constructed into an explicit Registry rather
// than registered against the global prometheus.DefaultRegisterer, so a
// run's metrics don't leak into a second run's in the same process.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds one placement run's counters and histograms, all
// registered against a private *prometheus.Registry so cmd/boardsat can
// serve them without colliding with anything else in the process.
type Metrics struct {
	Registry *prometheus.Registry

	ClauseCount   prometheus.Gauge
	VarCount      prometheus.Gauge
	EncodeSeconds prometheus.Histogram
	SolveSeconds  prometheus.Histogram
	ModelsYielded prometheus.Counter
}

// New builds a Metrics with a fresh Registry and registers every
// collector against it, scoped to one instance instead of the
// package-global default registerer.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ClauseCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boardsat_clause_count",
			Help: "Number of CNF clauses in the most recently built constraint system.",
		}),
		VarCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boardsat_var_count",
			Help: "Number of propositional variables allocated for the most recently built constraint system.",
		}),
		EncodeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boardsat_encode_seconds",
			Help:    "Time spent building the constraint system for one placement run.",
			Buckets: prometheus.DefBuckets,
		}),
		SolveSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boardsat_solve_seconds",
			Help:    "Time spent in a single solver call.",
			Buckets: prometheus.DefBuckets,
		}),
		ModelsYielded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boardsat_models_yielded_total",
			Help: "Total number of placements yielded across all enumerate calls.",
		}),
	}
	m.Registry.MustRegister(
		m.ClauseCount,
		m.VarCount,
		m.EncodeSeconds,
		m.SolveSeconds,
		m.ModelsYielded,
	)
	return m
}

// ObserveEncode records the size of a just-built constraint system and
// how long building it took.
func (m *Metrics) ObserveEncode(clauses, vars int, d time.Duration) {
	if m == nil {
		return
	}
	m.ClauseCount.Set(float64(clauses))
	m.VarCount.Set(float64(vars))
	m.EncodeSeconds.Observe(d.Seconds())
}

// ObserveSolve records the wall-clock time of one solver call.
func (m *Metrics) ObserveSolve(d time.Duration) {
	if m == nil {
		return
	}
	m.SolveSeconds.Observe(d.Seconds())
}

// IncModelsYielded records that one more Placement was yielded.
func (m *Metrics) IncModelsYielded() {
	if m == nil {
		return
	}
	m.ModelsYielded.Inc()
}

// Package metrics wraps a dstarlite.Planner's Stats() snapshot in a small
// set of Prometheus collectors: a thin struct owning the collectors, with
// one method to push the latest snapshot. It registers directly with a
// prometheus.Registerer and serves a pull-based /metrics endpoint, since the
// simulation CLI is a short-lived local process rather than a batch job with
// a Pushgateway to report to.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/dstarlite/dstarlite"
)

// PlannerMetrics exposes a Planner's instrumentation as Prometheus
// collectors: a counter of completed compute-loop runs and a gauge of the
// open list's current size.
type PlannerMetrics struct {
	replans  prometheus.Counter
	queueLen prometheus.Gauge

	lastReplans uint64
}

// New registers a fresh set of collectors on reg and returns a
// PlannerMetrics ready to observe a Planner.
func New(reg prometheus.Registerer) *PlannerMetrics {
	m := &PlannerMetrics{
		replans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dstarlite_replans_total",
			Help: "Total completed computeShortestPath runs across all Planners observed by this process.",
		}),
		queueLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dstarlite_open_list_size",
			Help: "Current size of the most recently observed Planner's open list.",
		}),
	}
	reg.MustRegister(m.replans, m.queueLen)
	return m
}

// Observe records p's current PlannerStats. Replans is monotonic on a
// Planner, so Observe adds only the delta since the last call; QueueLen is
// a point-in-time gauge and is simply set.
func (m *PlannerMetrics) Observe(p *dstarlite.Planner) {
	st := p.Stats()
	if st.Replans > m.lastReplans {
		m.replans.Add(float64(st.Replans - m.lastReplans))
		m.lastReplans = st.Replans
	}
	m.queueLen.Set(float64(st.QueueLen))
}

// Handler returns the HTTP handler to serve at the metrics endpoint.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are registered on a per-Server registry so several servers (and
// tests) can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &metrics{
		registry: reg,
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tspsearch_solves_total",
			Help: "Searches run by algorithm and outcome",
		}, []string{"algo", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tspsearch_solve_duration_seconds",
			Help:    "Search wall time",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 7),
		}, []string{"algo"}),
		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tspsearch_solve_expanded_nodes",
			Help:    "Partial tours expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}, []string{"algo"}),
	}
}

// Outcome labels.
const (
	resultOK          = "ok"
	resultUnreachable = "unreachable"
	resultLimit       = "limit"
	resultCanceled    = "canceled"
	resultError       = "error"
)

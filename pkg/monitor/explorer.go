package monitor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RPCRequestsTotal counts node calls by method and outcome (ok, rpc_error, transport_error).
	RPCRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_rpc_requests_total",
		Help: "Total number of JSON-RPC calls made to the node.",
	}, []string{"method", "outcome"})

	RPCRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "explorer_rpc_request_duration_seconds",
		Help:    "Latency of JSON-RPC calls made to the node.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// SearchOutcomesTotal counts how search queries were classified.
	SearchOutcomesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_search_outcomes_total",
		Help: "Search queries by resolved kind.",
	}, []string{"kind"})
)

// RPC outcomes
const (
	OutcomeOK             = "ok"
	OutcomeRPCError       = "rpc_error"
	OutcomeTransportError = "transport_error"
)

// ObserveRPC records one node call.
func ObserveRPC(method, outcome string, started time.Time) {
	RPCRequestsTotal.WithLabelValues(method, outcome).Inc()
	RPCRequestDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}

// ObserveSearch records one classified search query.
func ObserveSearch(kind string) {
	SearchOutcomesTotal.WithLabelValues(kind).Inc()
}

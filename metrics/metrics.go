package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream fetch outcomes
const (
	OutcomeSuccess        = "success"
	OutcomeTransportError = "transport_error"
	OutcomeBadStatus      = "bad_status"
	OutcomeBadPayload     = "bad_payload"
)

var (
	upstreamFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "randomdog_upstream_fetch_duration_seconds",
		Help:    "Duration of calls to the upstream dog image API",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	upstreamFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "randomdog_upstream_fetch_total",
		Help: "Total calls to the upstream dog image API grouped by outcome",
	}, []string{"outcome"})
)

// ObserveUpstreamFetch records the duration and outcome of one upstream call.
func ObserveUpstreamFetch(outcome string, duration time.Duration) {
	if outcome == "" {
		outcome = "unknown"
	}
	upstreamFetchDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	upstreamFetchTotal.WithLabelValues(outcome).Inc()
}

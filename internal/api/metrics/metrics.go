// Package metrics defines and registers all custom Prometheus metrics for
// the TrailConnect web gateway. It is the single source of truth for metric
// names, labels, and help strings. Metrics are registered with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trailconnect"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsStartedTotal counts sessions established through login.
var SessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of gateway sessions established via login.",
	},
)

// BootstrapTotal counts session bootstrap outcomes.
// Label:
//   - result: "authenticated", "no_session", or "stale" (result dropped
//     because an explicit transition happened while the fetch was in flight)
var BootstrapTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_bootstrap_total",
		Help:      "Total number of session bootstrap attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Backend metrics ───────────────────────────────────────────────────────────

// BackendRequestsTotal counts calls forwarded to the marketplace API.
// Labels:
//   - endpoint: logical endpoint name (e.g. "guides.list")
//   - status: HTTP status code, or "error" on transport failure
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests forwarded to the marketplace API.",
	},
	[]string{"endpoint", "status"},
)

// BackendRequestDuration measures round-trip time to the marketplace API.
// Label:
//   - endpoint: logical endpoint name
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Round-trip duration of marketplace API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Directory cache metrics ───────────────────────────────────────────────────

// DirectoryCacheTotal counts cache lookups for discovery data.
// Label:
//   - result: "hit" or "miss"
var DirectoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_cache_total",
		Help:      "Total number of directory cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// EstimatesComputedTotal counts price estimates served to the booking form.
var EstimatesComputedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_computed_total",
		Help:      "Total number of booking price estimates computed.",
	},
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync engine and BFF metrics. Resource labels are the cache key resource
// name (e.g. "designs", "messages"), never the full key.
var (
	// CacheLookupsTotal counts cache reads by outcome: hit, stale, miss, joined.
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "threadline",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total resource cache lookups by outcome",
		},
		[]string{"resource", "outcome"},
	)

	// CacheFetchesTotal counts network fetches started by the cache.
	CacheFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "threadline",
			Subsystem: "cache",
			Name:      "fetches_total",
			Help:      "Total upstream fetches issued by the resource cache",
		},
		[]string{"resource", "status"},
	)

	// CacheFetchDuration observes upstream fetch latency including retries.
	CacheFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "threadline",
			Subsystem: "cache",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream fetch duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"resource"},
	)

	// PollersActive is the number of keys currently tracked by a poller.
	PollersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "threadline",
			Subsystem: "poller",
			Name:      "active",
			Help:      "Resources currently being polled",
		},
	)

	// PollTicksTotal counts poll fetches by result.
	PollTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "threadline",
			Subsystem: "poller",
			Name:      "ticks_total",
			Help:      "Total poll fetches",
		},
		[]string{"status"},
	)

	// OptimisticMutationsTotal counts optimistic commands by outcome.
	OptimisticMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "threadline",
			Subsystem: "optimistic",
			Name:      "mutations_total",
			Help:      "Optimistic mutations by outcome",
		},
		[]string{"outcome"},
	)

	// ContactSubmissionsTotal counts contact form submissions by result.
	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "threadline",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions",
		},
		[]string{"result"},
	)
)

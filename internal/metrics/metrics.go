// Package metrics defines Prometheus metrics for inspection-pricing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ipe"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Estimate metrics.
var (
	EstimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_total",
		Help:      "Total number of estimates priced, by shop.",
	}, []string{"shop"})

	EstimateTotalDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimate_total_dollars",
		Help:      "Distribution of quoted estimate totals in dollars.",
		Buckets:   prometheus.ExponentialBuckets(25, 2, 8), // 25 .. 3200
	})

	QuoteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_duration_seconds",
		Help:      "Duration of quote requests including persistence in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ValidationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of pricing params that failed validation.",
	})

	FormulaDivergenceTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "formula_divergence_total",
		Help:      "Total number of estimates whose breakdown total disagrees with the quoted estimate.",
	})
)

// Market snapshot metrics.
var (
	MarketRefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_refresh_snapshots_total",
		Help:      "Total number of market snapshots created by the refresh job.",
	})

	MarketRefreshErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_refresh_errors_total",
		Help:      "Total number of market refresh failures.",
	})

	MarketRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "market_refresh_duration_seconds",
		Help:      "Duration of market refresh runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Cache metrics.
var (
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of shop settings cache hits.",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of shop settings cache misses.",
	})
)

// Event metrics.
var (
	EventsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of estimate events published.",
	})

	EventPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_publish_failures_total",
		Help:      "Total number of estimate event publish failures.",
	})
)

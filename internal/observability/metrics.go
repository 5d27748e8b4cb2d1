// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	renderDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "render_duration_seconds",
			Help:    "Time spent rasterizing one drawing view.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"view"},
	)

	renderCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "render_cache_results_total",
			Help: "Rendered-drawing cache results by tier and outcome.",
		},
		[]string{"tier", "outcome"},
	)

	cacheOpDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Latency of cache backend operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
		},
		[]string{"op", "status"},
	)

	advisoriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisories_total",
			Help: "Input advisories raised during quantity computation.",
		},
		[]string{"kind"},
	)

	eventsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "design_events_published_total",
			Help: "Design events delivered to the broker.",
		},
	)

	eventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "design_events_dropped_total",
			Help: "Design events dropped before delivery.",
		},
		[]string{"reason"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

func ObserveRender(view string, durationSeconds float64) {
	renderDurationSeconds.WithLabelValues(view).Observe(durationSeconds)
}

func IncRenderCacheHit(tier string) {
	renderCacheResults.WithLabelValues(tier, "hit").Inc()
}

func IncRenderCacheMiss(tier string) {
	renderCacheResults.WithLabelValues(tier, "miss").Inc()
}

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	cacheOpDurationSeconds.WithLabelValues(op, status).Observe(durationSeconds)
}

func IncAdvisory(kind string) {
	advisoriesTotal.WithLabelValues(kind).Inc()
}

func IncEventPublished() {
	eventsPublishedTotal.Inc()
}

func IncEventDropped(reason string) {
	eventsDroppedTotal.WithLabelValues(reason).Inc()
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}

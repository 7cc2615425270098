package infrastructure

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type promMetrics struct {
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	upstreamCalls       *prometheus.CounterVec
	upstreamLatency     *prometheus.HistogramVec
	itinerariesProduced *prometheus.CounterVec
}

var (
	promOnce    sync.Once
	promGlobals *promMetrics
)

// collectors are registered once per process with the default registry
func getPromMetrics() *promMetrics {
	promOnce.Do(func() {
		promGlobals = &promMetrics{
			cacheHits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "tripplanner_forecast_cache_hits_total",
				Help: "The total number of forecast cache hits",
			}),
			cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
				Name: "tripplanner_forecast_cache_misses_total",
				Help: "The total number of forecast cache misses",
			}),
			upstreamCalls: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "tripplanner_upstream_requests_total",
				Help: "The total number of calls to upstream services",
			}, []string{"service", "success"}),
			upstreamLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "tripplanner_upstream_request_duration_seconds",
				Help:    "Upstream call duration in seconds",
				Buckets: prometheus.DefBuckets,
			}, []string{"service"}),
			itinerariesProduced: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "tripplanner_itineraries_generated_total",
				Help: "The total number of generated itineraries",
			}, []string{"model"}),
		}
	})
	return promGlobals
}

// PrometheusMetricsCollector implements the MetricsCollector port
type PrometheusMetricsCollector struct {
	metrics *promMetrics
}

// NewPrometheusMetricsCollector returns a collector backed by the process-wide registry
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	return &PrometheusMetricsCollector{metrics: getPromMetrics()}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	m.metrics.cacheHits.Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	m.metrics.cacheMisses.Inc()
}

func (m *PrometheusMetricsCollector) RecordUpstreamCall(ctx context.Context, service string, success bool, duration time.Duration) {
	m.metrics.upstreamCalls.WithLabelValues(service, strconv.FormatBool(success)).Inc()
	m.metrics.upstreamLatency.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordItineraryGenerated(ctx context.Context, model string) {
	m.metrics.itinerariesProduced.WithLabelValues(model).Inc()
}

package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the Prometheus registry and the collectors exposed on
// the /metrics endpoint.
type MetricsService struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Histogram
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	goroutines      prometheus.GaugeFunc
}

// NewMetricsService registers the collectors on a fresh registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	s := &MetricsService{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pawpal_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pawpal_http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		cacheLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pawpal_stats_cache_latency_seconds",
			Help:    "Latency of stats cache lookups.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pawpal_stats_cache_hits_total",
			Help: "Stats cache lookups served from Redis.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pawpal_stats_cache_misses_total",
			Help: "Stats cache lookups that fell through to Postgres.",
		}),
		goroutines: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "pawpal_goroutines",
			Help: "Current number of goroutines.",
		}, func() float64 { return float64(runtime.NumGoroutine()) }),
	}

	registry.MustRegister(
		s.requestDuration,
		s.requestTotal,
		s.cacheLatency,
		s.cacheHits,
		s.cacheMisses,
		s.goroutines,
	)
	return s
}

// ObserveHTTPRequest records a completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if s == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	s.requestDuration.With(labels).Observe(elapsed.Seconds())
	s.requestTotal.With(labels).Inc()
}

// RecordCacheOperation records a stats cache lookup outcome.
func (s *MetricsService) RecordCacheOperation(hit bool, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.cacheLatency.Observe(elapsed.Seconds())
	if hit {
		s.cacheHits.Inc()
	} else {
		s.cacheMisses.Inc()
	}
}

// Handler exposes the registry in Prometheus text format.
func (s *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ladder"

// PrometheusHooks implements every hook interface with Prometheus metrics.
type PrometheusHooks struct {
	searches        *prometheus.CounterVec
	searchDuration  prometheus.Histogram
	graphNodes      prometheus.Histogram
	enumerations    *prometheus.CounterVec
	pathsFound      prometheus.Histogram
	enumerateTiming prometheus.Histogram

	cacheRequests *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec

	httpInFlight *prometheus.GaugeVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpErrors   *prometheus.CounterVec
}

// NewPrometheusHooks registers the ladder metrics with reg.
// It panics if the metrics are already registered with reg.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	f := promauto.With(reg)
	return &PrometheusHooks{
		// Labels: outcome (found, not_found, error)
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "total",
			Help:      "Level-graph searches by outcome",
		}, []string{"outcome"}),
		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Time spent building level graphs",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		graphNodes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "graph_nodes",
			Help:      "Nodes in built level graphs",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		// Labels: outcome (ok, error)
		enumerations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "enumerate",
			Name:      "total",
			Help:      "Path enumerations by outcome",
		}, []string{"outcome"}),
		pathsFound: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "enumerate",
			Name:      "paths",
			Help:      "Shortest paths produced per query",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		enumerateTiming: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "enumerate",
			Name:      "duration_seconds",
			Help:      "Time spent materializing paths",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		// Labels: key_type (ladder, graph), result (hit, miss)
		cacheRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Cache lookups by key type and result",
		}, []string{"key_type", "result"}),
		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Bytes written to the cache",
		}, []string{"key_type"}),
		httpInFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Requests currently being served",
		}, []string{"route"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Completed requests by route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Failed requests by error code",
		}, []string{"route", "code"}),
	}
}

func (h *PrometheusHooks) OnSearchStart(context.Context, string, string, int) {}

func (h *PrometheusHooks) OnSearchComplete(_ context.Context, nodes, _ int, found bool, d time.Duration, err error) {
	h.searchDuration.Observe(d.Seconds())
	switch {
	case err != nil:
		h.searches.WithLabelValues("error").Inc()
		return
	case found:
		h.searches.WithLabelValues("found").Inc()
	default:
		h.searches.WithLabelValues("not_found").Inc()
	}
	h.graphNodes.Observe(float64(nodes))
}

func (h *PrometheusHooks) OnEnumerateComplete(_ context.Context, paths int, d time.Duration, err error) {
	h.enumerateTiming.Observe(d.Seconds())
	if err != nil {
		h.enumerations.WithLabelValues("error").Inc()
		return
	}
	h.enumerations.WithLabelValues("ok").Inc()
	h.pathsFound.Observe(float64(paths))
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheRequests.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheRequests.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(_ context.Context, _, route string) {
	h.httpInFlight.WithLabelValues(route).Inc()
}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.httpInFlight.WithLabelValues(route).Dec()
	h.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnError(_ context.Context, _, route, code string) {
	h.httpErrors.WithLabelValues(route, code).Inc()
}

var (
	_ SolverHooks = (*PrometheusHooks)(nil)
	_ CacheHooks  = (*PrometheusHooks)(nil)
	_ HTTPHooks   = (*PrometheusHooks)(nil)
)

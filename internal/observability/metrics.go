package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder defines the metrics surface used across the codebase.
// The no-op default keeps metrics optional in tests and tools.
type Recorder interface {
	ObserveRequest(method, route, statusClass string, duration time.Duration)
	ObserveEmbedding(success bool, duration time.Duration)
	IncCache(name string, hit bool)
	IncAuditDropped(kind string)
}

// NoopRecorder implements Recorder with no-ops.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRequest(string, string, string, time.Duration) {}
func (NoopRecorder) ObserveEmbedding(bool, time.Duration)                 {}
func (NoopRecorder) IncCache(string, bool)                                {}
func (NoopRecorder) IncAuditDropped(string)                               {}

var _ Recorder = NoopRecorder{}

// PrometheusRecorder implements Recorder backed by a private Prometheus registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	requestTotal     *prometheus.CounterVec
	requestSeconds   *prometheus.HistogramVec
	embeddingTotal   *prometheus.CounterVec
	embeddingSeconds *prometheus.HistogramVec
	cacheTotal       *prometheus.CounterVec
	auditDropped     *prometheus.CounterVec
}

var _ Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder creates a recorder with its own registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status_class"}),
		requestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status_class"}),
		embeddingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "embedding_calls_total",
			Help: "Total number of embedding model calls",
		}, []string{"success"}),
		embeddingSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "embedding_call_seconds",
			Help:    "Embedding model call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"success"}),
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Cache lookups by cache name and outcome",
		}, []string{"cache", "outcome"}),
		auditDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_writes_dropped_total",
			Help: "Fire-and-forget audit writes that failed and were dropped",
		}, []string{"kind"}),
	}

	r.registry.MustRegister(
		r.requestTotal, r.requestSeconds,
		r.embeddingTotal, r.embeddingSeconds,
		r.cacheTotal, r.auditDropped,
	)

	return r
}

// Handler returns the /metrics HTTP handler for this recorder's registry.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *PrometheusRecorder) ObserveRequest(method, route, statusClass string, duration time.Duration) {
	r.requestTotal.WithLabelValues(method, route, statusClass).Inc()
	r.requestSeconds.WithLabelValues(method, route, statusClass).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) ObserveEmbedding(success bool, duration time.Duration) {
	label := strconv.FormatBool(success)
	r.embeddingTotal.WithLabelValues(label).Inc()
	r.embeddingSeconds.WithLabelValues(label).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) IncCache(name string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}

	r.cacheTotal.WithLabelValues(name, outcome).Inc()
}

func (r *PrometheusRecorder) IncAuditDropped(kind string) {
	r.auditDropped.WithLabelValues(kind).Inc()
}

package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for generation requests.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics for codemaster
type Metrics struct {
	// Generation metrics
	GenerationRequests *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec

	// Resolver metrics
	CatalogHits   prometheus.Counter
	CatalogMisses prometheus.Counter

	// Flow metrics
	FlowRejected *prometheus.CounterVec
}

var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

// Default returns the process-wide metrics registered on the default registry.
func Default() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = New(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// New creates and registers all metrics on reg. Tests pass a fresh
// prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GenerationRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codemaster_generation_requests_total",
				Help: "Total generation API calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		GenerationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "codemaster_generation_duration_seconds",
				Help:    "Duration of generation API calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s to 32s
			},
			[]string{"operation"},
		),
		CatalogHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "codemaster_catalog_hits_total",
				Help: "Searches answered from the static catalog",
			},
		),
		CatalogMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "codemaster_catalog_misses_total",
				Help: "Searches that fell through to guide generation",
			},
		),
		FlowRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codemaster_flow_rejected_total",
				Help: "Submissions ignored because the flow already had a call in flight",
			},
			[]string{"flow"},
		),
	}
}

// RecordGeneration records one generation call. Safe on a nil receiver.
func (m *Metrics) RecordGeneration(operation string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.GenerationRequests.WithLabelValues(operation, outcome).Inc()
	m.GenerationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordCatalogLookup records a catalog hit or miss. Safe on a nil receiver.
func (m *Metrics) RecordCatalogLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CatalogHits.Inc()
		return
	}
	m.CatalogMisses.Inc()
}

// RecordRejected records a busy rejection for flow. Safe on a nil receiver.
func (m *Metrics) RecordRejected(flow string) {
	if m == nil {
		return
	}
	m.FlowRejected.WithLabelValues(flow).Inc()
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	// Registry owns these metrics and backs the /metrics endpoint.
	Registry *prometheus.Registry

	syncRuns          *prometheus.CounterVec
	syncDuration      prometheus.Histogram
	companiesSynced   *prometheus.CounterVec
	psaRequests       *prometheus.CounterVec
	psaRequestLatency *prometheus.HistogramVec
	httpDuration      *prometheus.HistogramVec
	gapReports        prometheus.Counter
}

// NewMetrics registers every metric on a dedicated registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		syncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stack_tracker_sync_runs_total",
				Help: "PSA sync runs by final status.",
			},
			[]string{"status", "trigger"},
		),
		syncDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stack_tracker_sync_duration_seconds",
				Help:    "Wall time of PSA sync runs.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
			},
		),
		companiesSynced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stack_tracker_sync_companies_total",
				Help: "Companies processed by sync, by outcome.",
			},
			[]string{"outcome"},
		),
		psaRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stack_tracker_psa_requests_total",
				Help: "HTTP requests issued to the PSA, by endpoint and status code.",
			},
			[]string{"endpoint", "status"},
		),
		psaRequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stack_tracker_psa_request_duration_seconds",
				Help:    "Latency of PSA requests by endpoint.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stack_tracker_http_request_duration_seconds",
				Help:    "Duration of API requests by route pattern.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		gapReports: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stack_tracker_gap_reports_total",
				Help: "Gap reports generated.",
			},
		),
	}
}

// RecordSyncRun counts a finished sync run and observes its duration
func (m *Metrics) RecordSyncRun(status, trigger string, d time.Duration) {
	m.syncRuns.WithLabelValues(status, trigger).Inc()
	m.syncDuration.Observe(d.Seconds())
}

// IncrCompanyOutcome counts one processed company
func (m *Metrics) IncrCompanyOutcome(outcome string) {
	m.companiesSynced.WithLabelValues(outcome).Inc()
}

// ObservePSARequest matches psa.RequestObserver. status 0 means the request never got a response.
func (m *Metrics) ObservePSARequest(endpoint string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.psaRequests.WithLabelValues(endpoint, label).Inc()
	m.psaRequestLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ObserveHTTPRequest records one API request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// IncrGapReport counts one generated gap report
func (m *Metrics) IncrGapReport() {
	m.gapReports.Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

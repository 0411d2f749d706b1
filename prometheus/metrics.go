// Package prometheus provides extraction and API metrics backed by a
// dedicated Prometheus registry.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Metrics collects counters and histograms for store analyses. It owns its
// registry so that multiple instances (e.g. in tests) never collide.
type Metrics struct {
	registry *prometheus.Registry

	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	extractionErrors *prometheus.CounterVec
	productsFetched  prometheus.Histogram

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		analysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_analyses_total",
				Help: "Total number of store analyses.",
			},
			[]string{"outcome"}, // success, not_detected, error
		),
		analysisDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "store_analysis_duration_seconds",
				Help:    "Duration of store analyses.",
				Buckets: []float64{1, 5, 10, 15, 30, 60, 120},
			},
		),
		extractionErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extraction_errors_total",
				Help: "Non-fatal extraction errors by category.",
			},
			[]string{"category"},
		),
		productsFetched: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_products_fetched",
				Help:    "Products fetched per analyzed catalog.",
				Buckets: []float64{0, 10, 50, 100, 250, 500, 1000},
			},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of API requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of API requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		m.analysesTotal,
		m.analysisDuration,
		m.extractionErrors,
		m.productsFetched,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)

	return m
}

// ObserveAnalysis records the outcome of a single pipeline run.
func (m *Metrics) ObserveAnalysis(report *storeinsights.InsightsReport, duration time.Duration, err error) {
	m.analysisDuration.Observe(duration.Seconds())

	switch {
	case err != nil:
		m.analysesTotal.WithLabelValues("error").Inc()
		return
	case !report.ExtractionSuccess:
		m.analysesTotal.WithLabelValues("not_detected").Inc()
	default:
		m.analysesTotal.WithLabelValues("success").Inc()
		m.productsFetched.Observe(float64(report.TotalProducts))
	}

	for _, e := range report.Errors {
		m.extractionErrors.WithLabelValues(string(e.Category)).Inc()
	}
}

// Handler returns the /metrics endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// statusWriter captures the response status code for request metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware instruments an HTTP handler with request count and duration
// metrics.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		m.httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

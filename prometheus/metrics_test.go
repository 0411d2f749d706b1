package prometheus_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *prometheus.Metrics) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_ObserveAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("counts successful analyses and product sizes", func(t *testing.T) {
		t.Parallel()

		m := prometheus.NewMetrics()
		m.ObserveAnalysis(&storeinsights.InsightsReport{
			ExtractionSuccess: true,
			TotalProducts:     42,
		}, 2*time.Second, nil)

		body := scrape(t, m)
		assert.Contains(t, body, `store_analyses_total{outcome="success"} 1`)
		assert.Contains(t, body, "catalog_products_fetched")
	})

	t.Run("counts undetected targets separately", func(t *testing.T) {
		t.Parallel()

		m := prometheus.NewMetrics()
		m.ObserveAnalysis(&storeinsights.InsightsReport{
			ExtractionSuccess: false,
			Errors: []storeinsights.ExtractionError{
				{Category: storeinsights.ErrNotDetected},
			},
		}, time.Second, nil)

		body := scrape(t, m)
		assert.Contains(t, body, `store_analyses_total{outcome="not_detected"} 1`)
		assert.Contains(t, body, `extraction_errors_total{category="NOT_DETECTED"} 1`)
	})

	t.Run("counts pipeline faults without touching the report", func(t *testing.T) {
		t.Parallel()

		m := prometheus.NewMetrics()
		m.ObserveAnalysis(nil, time.Second, errors.New("wiring broken"))

		body := scrape(t, m)
		assert.Contains(t, body, `store_analyses_total{outcome="error"} 1`)
	})

	t.Run("counts per-category extraction errors", func(t *testing.T) {
		t.Parallel()

		m := prometheus.NewMetrics()
		m.ObserveAnalysis(&storeinsights.InsightsReport{
			ExtractionSuccess: true,
			Errors: []storeinsights.ExtractionError{
				{Category: storeinsights.ErrPolicyMissing, Detail: "shipping"},
				{Category: storeinsights.ErrPolicyMissing, Detail: "terms"},
				{Category: storeinsights.ErrFAQEmpty},
			},
		}, time.Second, nil)

		body := scrape(t, m)
		assert.Contains(t, body, `extraction_errors_total{category="POLICY_MISSING"} 2`)
		assert.Contains(t, body, `extraction_errors_total{category="FAQ_EMPTY"} 1`)
	})
}

func TestMetrics_Middleware(t *testing.T) {
	t.Parallel()

	m := prometheus.NewMetrics()
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/analyses/missing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := scrape(t, m)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/analyses/missing",status="404"} 1`)
}

package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/mock"
	storeslog "github.com/Bhaskar-Gayen/Shopify-store-analyzer/slog"
)

func TestLoggingInsightsService_AnalyzeStore(t *testing.T) {
	t.Parallel()

	t.Run("logs the run outcome", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.InsightsService{
			AnalyzeStoreFn: func(ctx context.Context, rawURL string) (*storeinsights.InsightsReport, error) {
				return &storeinsights.InsightsReport{
					Target:            "https://shop.example.com",
					ExtractionSuccess: true,
					TotalProducts:     42,
				}, nil
			},
		}

		svc := storeslog.NewLoggingInsightsService(inner, logger)
		report, err := svc.AnalyzeStore(context.Background(), "shop.example.com")

		require.NoError(t, err)
		assert.Equal(t, 42, report.TotalProducts)
		output := buf.String()
		assert.Contains(t, output, "store analysis")
		assert.Contains(t, output, "url=shop.example.com")
		assert.Contains(t, output, "detected=true")
		assert.Contains(t, output, "products=42")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error without a report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.InsightsService{
			AnalyzeStoreFn: func(ctx context.Context, rawURL string) (*storeinsights.InsightsReport, error) {
				return nil, storeinsights.Errorf(storeinsights.EINVALID, "target URL required")
			},
		}

		svc := storeslog.NewLoggingInsightsService(inner, logger)
		_, err := svc.AnalyzeStore(context.Background(), "")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "store analysis")
		assert.Contains(t, output, "target URL required")
		assert.NotContains(t, output, "products=")
	})
}

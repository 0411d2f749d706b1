package slog

import (
	"context"
	"log/slog"
	"time"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Ensure LoggingInsightsService implements storeinsights.InsightsService.
var _ storeinsights.InsightsService = (*LoggingInsightsService)(nil)

// LoggingInsightsService wraps an InsightsService with per-run logging.
type LoggingInsightsService struct {
	next   storeinsights.InsightsService
	logger *slog.Logger
}

// NewLoggingInsightsService creates a new LoggingInsightsService.
func NewLoggingInsightsService(next storeinsights.InsightsService, logger *slog.Logger) *LoggingInsightsService {
	return &LoggingInsightsService{next: next, logger: logger}
}

// AnalyzeStore delegates to the wrapped service and logs the run's outcome.
func (s *LoggingInsightsService) AnalyzeStore(ctx context.Context, rawURL string) (report *storeinsights.InsightsReport, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", rawURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if report != nil {
			attrs = append(attrs,
				"detected", report.ExtractionSuccess,
				"products", report.TotalProducts,
				"heroes", len(report.HeroProducts),
				"faqs", len(report.FAQs),
				"issues", len(report.Errors),
			)
		}
		s.logger.Info("store analysis", attrs...)
	}(time.Now())
	return s.next.AnalyzeStore(ctx, rawURL)
}

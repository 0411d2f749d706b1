package mock

import (
	"context"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var _ storeinsights.InsightsService = (*InsightsService)(nil)

type InsightsService struct {
	AnalyzeStoreFn func(ctx context.Context, rawURL string) (*storeinsights.InsightsReport, error)
}

func (s *InsightsService) AnalyzeStore(ctx context.Context, rawURL string) (*storeinsights.InsightsReport, error) {
	return s.AnalyzeStoreFn(ctx, rawURL)
}

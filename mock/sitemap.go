package mock

import (
	"context"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var _ storeinsights.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of storeinsights.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, target storeinsights.Target) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, target storeinsights.Target) ([]string, error) {
	return s.DiscoverURLsFn(ctx, target)
}

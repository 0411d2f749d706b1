package storeinsights

import "context"

// SitemapService discovers page URLs from a site's sitemap. It first checks
// robots.txt for Sitemap directives, then falls back to /sitemap.xml;
// sitemap indexes are resolved recursively. The pipeline uses it to find
// candidate /pages/ and /policies/ URLs beyond what the homepage links to.
type SitemapService interface {
	DiscoverURLs(ctx context.Context, target Target) ([]string, error)
}

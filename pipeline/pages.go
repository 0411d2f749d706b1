package pipeline

import (
	"context"
	"sync"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// page is one fetched and parsed candidate source page. Miners consume
// pages read-only.
type page struct {
	url      string
	html     string
	analysis *storeinsights.PageAnalysis
}

// pageSet fetches candidate pages at most once per run and shares the
// parsed results across miners. Failed fetches are cached too, so a dead
// URL costs one round of retries no matter how many miners ask for it.
type pageSet struct {
	pipeline *Pipeline
	target   storeinsights.Target

	mu    sync.Mutex
	pages map[string]*page // nil value records a failed fetch
}

func (p *Pipeline) newPageSet(target storeinsights.Target) *pageSet {
	return &pageSet{
		pipeline: p,
		target:   target,
		pages:    make(map[string]*page),
	}
}

// seed registers an already-fetched page, e.g. the homepage.
func (s *pageSet) seed(url, html string, analysis *storeinsights.PageAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[url] = &page{url: url, html: html, analysis: analysis}
}

// get returns the page for a URL, fetching and parsing it on first use.
// The second return is false when the URL could not be fetched. The lock is
// held across the fetch so concurrent miners asking for the same URL never
// hit the network twice; the per-host rate limiter serializes the requests
// anyway.
func (s *pageSet) get(ctx context.Context, url string) (*page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.pages[url]; ok {
		return cached, cached != nil
	}

	html, err := s.pipeline.fetch(ctx, s.target, url)
	if err != nil {
		s.pages[url] = nil
		return nil, false
	}

	analysis, err := s.pipeline.Analyzer.Analyze(html, s.target)
	if err != nil {
		analysis = &storeinsights.PageAnalysis{}
	}

	fetched := &page{url: url, html: html, analysis: analysis}
	s.pages[url] = fetched
	return fetched, true
}

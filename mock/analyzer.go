package mock

import (
	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var _ storeinsights.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of storeinsights.Analyzer.
type Analyzer struct {
	AnalyzeFn func(html string, base storeinsights.Target) (*storeinsights.PageAnalysis, error)
}

func (a *Analyzer) Analyze(html string, base storeinsights.Target) (*storeinsights.PageAnalysis, error) {
	return a.AnalyzeFn(html, base)
}

var _ storeinsights.FAQParser = (*FAQParser)(nil)

// FAQParser is a mock implementation of storeinsights.FAQParser.
type FAQParser struct {
	ParseFAQsFn func(html string) []storeinsights.FAQ
}

func (p *FAQParser) ParseFAQs(html string) []storeinsights.FAQ {
	return p.ParseFAQsFn(html)
}

package mock

import (
	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var _ storeinsights.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of storeinsights.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*storeinsights.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*storeinsights.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ storeinsights.Converter = (*Converter)(nil)

// Converter is a mock implementation of storeinsights.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Ensure Extractor implements storeinsights.Extractor at compile time.
var _ storeinsights.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main content of a page,
// stripping storefront chrome like navigation, cart drawers and footers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*storeinsights.ExtractResult, error) {
	if rawHTML == "" {
		return nil, storeinsights.Errorf(storeinsights.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &storeinsights.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

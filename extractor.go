package storeinsights

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with navigation,
	// footer and other boilerplate chrome removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// The policy and brand miners use it to isolate a page's body text from
// theme chrome.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter renders clean HTML (e.g. from an Extractor) as Markdown text.
type Converter interface {
	Convert(html string) (string, error)
}

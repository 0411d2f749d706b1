package storeinsights

// Link is an anchor discovered on a storefront page, with its href resolved
// against the page's base URL.
type Link struct {
	URL  string
	Text string
}

// ProductRef is a product-detail link found on the homepage, reduced to its
// handle, plus the label of the promotional section it appeared under.
type ProductRef struct {
	Handle  string
	Context string
}

// PageAnalysis is the link/text model of a parsed storefront page. It is
// the shared input of the hero resolver and the content miners.
type PageAnalysis struct {
	// Title is the contents of the <title> element.
	Title string

	// SiteName is the og:site_name meta value, when present.
	SiteName string

	// Links are all anchors in document order, resolved and deduplicated
	// by URL.
	Links []Link

	// ProductRefs are product-detail links in document order, duplicates
	// by handle collapsed to first occurrence.
	ProductRefs []ProductRef

	// Text is the page's visible text with collapsed whitespace.
	Text string

	// AboutText is the visible text of an about/brand-story section found
	// on the page itself, if any.
	AboutText string

	// MailtoTargets and TelTargets are the addresses behind mailto: and
	// tel: links, in document order.
	MailtoTargets []string
	TelTargets    []string
}

// Analyzer parses storefront HTML into the link/text model used by the hero
// resolver and content miners.
type Analyzer interface {
	Analyze(html string, base Target) (*PageAnalysis, error)
}

// FAQParser extracts question/answer pairs from a FAQ-like page. The
// returned pairs are in document order and not yet capped or deduplicated.
type FAQParser interface {
	ParseFAQs(html string) []FAQ
}

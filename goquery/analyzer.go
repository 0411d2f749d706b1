package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Ensure PageAnalyzer implements storeinsights.Analyzer at compile time.
var _ storeinsights.Analyzer = (*PageAnalyzer)(nil)

// PageAnalyzer parses storefront HTML into the link/text model consumed by
// the hero resolver and content miners.
type PageAnalyzer struct{}

// NewPageAnalyzer creates a new PageAnalyzer.
func NewPageAnalyzer() *PageAnalyzer {
	return &PageAnalyzer{}
}

// handlePattern matches the canonical product-detail path. Handles are the
// URL-safe slugs Shopify assigns per product.
var handlePattern = regexp.MustCompile(`/products/([A-Za-z0-9][A-Za-z0-9._-]*)`)

// promoHeading matches section headings that label promotional blocks.
var promoHeading = regexp.MustCompile(`(?i)\b(featured|best\s*sellers?|new\s+arrivals?|trending|popular|our\s+picks|shop\s+the\s+look|staff\s+picks)\b`)

// aboutSection matches class/id values of homepage brand-story blocks.
var aboutSection = regexp.MustCompile(`(?i)about|brand-story|our-story|story`)

// Analyze parses the HTML into a PageAnalysis. The base target resolves
// relative hrefs.
func (a *PageAnalyzer) Analyze(html string, base storeinsights.Target) (*storeinsights.PageAnalysis, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, storeinsights.Errorf(storeinsights.EINVALID, "failed to parse HTML: %v", err)
	}

	analysis := &storeinsights.PageAnalysis{
		Title:    squeeze(doc.Find("title").First().Text()),
		SiteName: metaContent(doc, "meta[property='og:site_name']"),
	}

	a.collectLinks(doc, base, analysis)
	a.collectProductRefs(doc, analysis)
	analysis.AboutText = a.aboutText(doc)

	// Text extraction removes nodes, so it runs last.
	body := doc.Find("body")
	body.Find("script, style, noscript, svg").Remove()
	analysis.Text = squeeze(body.Text())

	return analysis, nil
}

// collectLinks gathers all anchors in document order, splitting off mailto:
// and tel: targets and deduplicating http(s) links by resolved URL.
func (a *PageAnalyzer) collectLinks(doc *goquery.Document, base storeinsights.Target, analysis *storeinsights.PageAnalysis) {
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)

		switch {
		case href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:"):
			return
		case strings.HasPrefix(href, "mailto:"):
			if addr := strings.SplitN(strings.TrimPrefix(href, "mailto:"), "?", 2)[0]; addr != "" {
				analysis.MailtoTargets = append(analysis.MailtoTargets, addr)
			}
			return
		case strings.HasPrefix(href, "tel:"):
			if num := strings.TrimPrefix(href, "tel:"); num != "" {
				analysis.TelTargets = append(analysis.TelTargets, num)
			}
			return
		}

		resolved := base.URL(href)
		if seen[resolved] {
			return
		}
		seen[resolved] = true

		analysis.Links = append(analysis.Links, storeinsights.Link{
			URL:  resolved,
			Text: squeeze(sel.Text()),
		})
	})
}

// collectProductRefs extracts product handles from product-detail links in
// document order, attaching the promotional section label each link appears
// under. Duplicate handles collapse to first occurrence.
func (a *PageAnalyzer) collectProductRefs(doc *goquery.Document, analysis *storeinsights.PageAnalysis) {
	seen := make(map[string]bool)

	doc.Find("a[href*='/products/']").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if idx := strings.IndexAny(href, "?#"); idx != -1 {
			href = href[:idx]
		}

		m := handlePattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		handle := m[1]
		if seen[handle] {
			return
		}
		seen[handle] = true

		analysis.ProductRefs = append(analysis.ProductRefs, storeinsights.ProductRef{
			Handle:  handle,
			Context: promoContext(sel),
		})
	})
}

// promoContext walks up from a product link looking for an enclosing block
// with a promotional heading. Sections only label hero candidates; they
// never filter them.
func promoContext(sel *goquery.Selection) string {
	for parent := sel.Parent(); parent.Length() > 0; parent = parent.Parent() {
		if parent.Is("body, html") {
			return ""
		}
		heading := parent.Find("h1, h2, h3, h4").FilterFunction(func(_ int, h *goquery.Selection) bool {
			return promoHeading.MatchString(h.Text())
		}).First()
		if heading.Length() > 0 {
			return squeeze(heading.Text())
		}
	}
	return ""
}

// aboutText returns the visible text of a brand-story block on the page
// itself, if one is present and substantial.
func (a *PageAnalyzer) aboutText(doc *goquery.Document) string {
	var text string
	doc.Find("section, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		if !aboutSection.MatchString(class) && !aboutSection.MatchString(id) {
			return true
		}
		candidate := squeeze(sel.Text())
		if len(candidate) > 50 {
			text = candidate
			return false
		}
		return true
	})
	return text
}

// metaContent returns the content attribute of the first element matching
// the selector.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// squeeze collapses all whitespace runs to single spaces and trims.
func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

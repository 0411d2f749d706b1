package pipeline

import (
	"strings"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// linkKeywords maps each link purpose to the phrases matched against a
// link's text and URL. More specific purposes are checked before broader
// ones so "about our shipping" does not land in the about bucket.
var linkKeywords = map[storeinsights.LinkPurpose][]string{
	storeinsights.LinkOrderTracking: {"order tracking", "track order", "track-order", "tracking", "track"},
	storeinsights.LinkContactUs:     {"contact us", "contact-us", "contact"},
	storeinsights.LinkBlog:          {"blog", "news", "journal"},
	storeinsights.LinkSizeGuide:     {"size guide", "size-guide", "sizing"},
	storeinsights.LinkCareers:       {"careers", "jobs", "join us"},
	storeinsights.LinkAboutUs:       {"about us", "about-us", "our story", "our-story", "about"},
	storeinsights.LinkFAQ:           {"faq", "frequently asked"},
}

// classifyLinks assigns a purpose to navigational links. The first matching
// link wins per purpose; a single link fills at most one purpose.
func classifyLinks(links []storeinsights.Link) storeinsights.ImportantLinks {
	result := storeinsights.ImportantLinks{}
	for _, link := range links {
		text := strings.ToLower(strings.TrimSpace(link.Text))
		url := strings.ToLower(link.URL)

		for _, purpose := range storeinsights.LinkPurposes() {
			if _, done := result[purpose]; done {
				continue
			}
			if matchesAny(text, url, linkKeywords[purpose]) {
				result[purpose] = link.URL
				break
			}
		}
	}
	return result
}

func matchesAny(text, url string, keywords []string) bool {
	for _, kw := range keywords {
		if (text != "" && strings.Contains(text, kw)) || strings.Contains(url, kw) {
			return true
		}
	}
	return false
}

// matchLinks returns the URLs of links whose text or URL contains one of
// the keywords, in document order.
func matchLinks(links []storeinsights.Link, keywords []string) []string {
	var urls []string
	for _, link := range links {
		text := strings.ToLower(strings.TrimSpace(link.Text))
		url := strings.ToLower(link.URL)
		if matchesAny(text, url, keywords) {
			urls = append(urls, link.URL)
		}
	}
	return urls
}

// matchURLs filters a URL list (e.g. sitemap output) by keyword.
func matchURLs(urls []string, keywords []string) []string {
	var matched []string
	for _, u := range urls {
		lower := strings.ToLower(u)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, u)
				break
			}
		}
	}
	return matched
}

// filterCandidatePaths keeps URLs under the path prefixes content miners
// consult. Storefront sitemaps list every product and collection page too;
// a product slug like "all-about-linen" would otherwise keyword-match into
// the about or policy candidate lists.
func filterCandidatePaths(urls []string) []string {
	var kept []string
	for _, u := range urls {
		if strings.Contains(u, "/pages/") || strings.Contains(u, "/policies/") {
			kept = append(kept, u)
		}
	}
	return kept
}

// dedupeURLs collapses duplicates preserving first-seen order.
func dedupeURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

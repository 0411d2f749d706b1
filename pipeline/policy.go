package pipeline

import (
	"context"
	"fmt"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// policyKeywords maps each policy kind to the phrases matched against link
// text and URLs.
var policyKeywords = map[storeinsights.PolicyKind][]string{
	storeinsights.PolicyPrivacy:  {"privacy"},
	storeinsights.PolicyRefund:   {"refund", "return"},
	storeinsights.PolicyTerms:    {"terms", "tos"},
	storeinsights.PolicyShipping: {"shipping"},
}

// policyGuesses are the standard storefront policy paths, tried after any
// links discovered on the site itself.
var policyGuesses = map[storeinsights.PolicyKind][]string{
	storeinsights.PolicyPrivacy:  {"/policies/privacy-policy"},
	storeinsights.PolicyRefund:   {"/policies/refund-policy"},
	storeinsights.PolicyTerms:    {"/policies/terms-of-service"},
	storeinsights.PolicyShipping: {"/policies/shipping-policy"},
}

// minePolicies locates and extracts each recognized policy kind. Candidate
// URLs per kind are keyword-matched links, the standard policy path, then
// sitemap discoveries; the first fetchable candidate wins. The body is the
// page's main content rendered as Markdown and capped.
func (p *Pipeline) minePolicies(ctx context.Context, set *pageSet, links []storeinsights.Link, sitemapURLs []string) (storeinsights.PolicySet, []storeinsights.ExtractionError) {
	policies := storeinsights.PolicySet{}
	var errs []storeinsights.ExtractionError

	guesses := p.PolicyGuesses
	if guesses == nil {
		guesses = policyGuesses
	}

	for _, kind := range storeinsights.PolicyKinds() {
		keywords := policyKeywords[kind]

		candidates := matchLinks(links, keywords)
		for _, guess := range guesses[kind] {
			candidates = append(candidates, set.target.URL(guess))
		}
		candidates = append(candidates, matchURLs(sitemapURLs, keywords)...)
		candidates = dedupeURLs(candidates)

		body := ""
		for _, candidate := range candidates {
			pg, ok := set.get(ctx, candidate)
			if !ok {
				continue
			}
			if body = p.extractBody(pg); body != "" {
				break
			}
		}

		if body == "" {
			errs = append(errs, storeinsights.ExtractionError{
				Category: storeinsights.ErrPolicyMissing,
				Detail:   string(kind),
				Message:  fmt.Sprintf("no %s policy page found", kind),
			})
			continue
		}
		policies[kind] = truncate(body, p.Config.MaxPolicyLength)
	}

	return policies, errs
}

// extractBody isolates a page's main content and renders it as Markdown,
// falling back to the page's visible text when extraction fails.
func (p *Pipeline) extractBody(pg *page) string {
	if p.Extractor != nil && p.Converter != nil {
		if result, err := p.Extractor.Extract(pg.html); err == nil && result.ContentHTML != "" {
			if md, err := p.Converter.Convert(result.ContentHTML); err == nil && md != "" {
				return md
			}
		}
	}
	return pg.analysis.Text
}

// truncate caps a string at max runes.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

package pipeline

import (
	"context"
	"regexp"
	"strings"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// aboutKeywordTiers order the brand-page candidates: explicit about pages
// first, brand-story pages second.
var aboutKeywordTiers = [][]string{
	{"about us", "about-us", "about"},
	{"our story", "our-story"},
}

var aboutGuesses = []string{"/pages/about-us", "/pages/about", "/pages/our-story"}

// maxAboutPages bounds how many about-page candidates are fetched.
const maxAboutPages = 2

// titleSuffix strips the tagline storefront titles append after a dash or
// pipe, e.g. "Acme Apparel - Sustainable Basics".
var titleSuffix = regexp.MustCompile(`\s*[-–|]\s*.*$`)

// brandName resolves the store's display name: the homepage title with its
// tagline stripped, then the og:site_name meta value, then the first label
// of the domain.
func brandName(homepage *page, target storeinsights.Target) string {
	if homepage != nil {
		if title := strings.TrimSpace(homepage.analysis.Title); title != "" {
			if name := strings.TrimSpace(titleSuffix.ReplaceAllString(title, "")); name != "" {
				return name
			}
		}
		if name := strings.TrimSpace(homepage.analysis.SiteName); name != "" {
			return name
		}
	}

	label, _, _ := strings.Cut(target.Domain(), ".")
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// mineBrandContext assembles the brand's story text in candidate priority
// order: about pages, then brand-story pages, then the homepage's own about
// section, concatenated up to the configured cap.
func (p *Pipeline) mineBrandContext(ctx context.Context, set *pageSet, homepage *page, links []storeinsights.Link, sitemapURLs []string) string {
	limit := p.Config.MaxBrandContextLength
	if limit <= 0 {
		limit = 500
	}

	guesses := p.AboutGuesses
	if guesses == nil {
		guesses = aboutGuesses
	}

	var candidates []string
	for _, tier := range aboutKeywordTiers {
		candidates = append(candidates, matchLinks(links, tier)...)
	}
	for _, guess := range guesses {
		candidates = append(candidates, set.target.URL(guess))
	}
	for _, tier := range aboutKeywordTiers {
		candidates = append(candidates, matchURLs(sitemapURLs, tier)...)
	}
	candidates = dedupeURLs(candidates)

	var parts []string
	total := 0
	for _, candidate := range candidates {
		if len(parts) >= maxAboutPages || total >= limit {
			break
		}
		pg, ok := set.get(ctx, candidate)
		if !ok {
			continue
		}
		if body := p.extractBody(pg); body != "" {
			parts = append(parts, body)
			total += len(body)
		}
	}

	if homepage != nil && homepage.analysis.AboutText != "" {
		parts = append(parts, homepage.analysis.AboutText)
	}

	text := strings.TrimSpace(strings.Join(parts, "\n\n"))
	return truncate(text, limit)
}

package pipeline

import (
	"context"
	"strings"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var faqKeywords = []string{"faq", "frequently asked", "help", "support"}

var faqGuesses = []string{"/pages/faq", "/pages/faqs", "/pages/help"}

// maxFAQPages bounds how many candidate pages the FAQ miner will fetch.
const maxFAQPages = 3

// mineFAQs collects question/answer pairs from the homepage and FAQ-like
// pages. Pairs are deduplicated by normalized question and capped, keeping
// document order.
func (p *Pipeline) mineFAQs(ctx context.Context, set *pageSet, homepage *page, links []storeinsights.Link, sitemapURLs []string) []storeinsights.FAQ {
	limit := p.Config.MaxFAQs
	if limit <= 0 {
		limit = 10
	}

	var faqs []storeinsights.FAQ
	seen := make(map[string]struct{})

	collect := func(parsed []storeinsights.FAQ) (full bool) {
		for _, faq := range parsed {
			key := normalizeQuestion(faq.Question)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			faqs = append(faqs, faq)
			if len(faqs) >= limit {
				return true
			}
		}
		return false
	}

	// Some themes render the FAQ accordion on the homepage itself.
	if homepage != nil {
		if collect(p.FAQs.ParseFAQs(homepage.html)) {
			return faqs
		}
	}

	guesses := p.FAQGuesses
	if guesses == nil {
		guesses = faqGuesses
	}

	candidates := matchLinks(links, faqKeywords)
	for _, guess := range guesses {
		candidates = append(candidates, set.target.URL(guess))
	}
	candidates = append(candidates, matchURLs(sitemapURLs, faqKeywords)...)
	candidates = dedupeURLs(candidates)

	fetched := 0
	for _, candidate := range candidates {
		if fetched >= maxFAQPages {
			break
		}
		pg, ok := set.get(ctx, candidate)
		if !ok {
			continue
		}
		fetched++
		if collect(p.FAQs.ParseFAQs(pg.html)) {
			break
		}
	}

	return faqs
}

func normalizeQuestion(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	q = strings.TrimSuffix(q, "?")
	return strings.Join(strings.Fields(q), " ")
}

package pipeline

import (
	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// resolveHeroes joins homepage product references against the catalog.
// Matches keep the homepage's first-seen order and are capped; references
// without a catalog entry are returned as advisory notes, never fabricated
// into hero products.
func resolveHeroes(refs []storeinsights.ProductRef, catalog []storeinsights.Product, max int) (heroes []storeinsights.HeroProduct, unmatched []string) {
	if max <= 0 {
		max = 6
	}

	byHandle := make(map[string]*storeinsights.Product, len(catalog))
	for i := range catalog {
		byHandle[catalog[i].Handle] = &catalog[i]
	}

	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.Handle]; ok {
			continue
		}
		seen[ref.Handle] = struct{}{}

		product, ok := byHandle[ref.Handle]
		if !ok {
			unmatched = append(unmatched, ref.Handle)
			continue
		}
		if len(heroes) < max {
			heroes = append(heroes, storeinsights.HeroProduct{
				Product: *product,
				Context: ref.Context,
			})
		}
	}

	return heroes, unmatched
}

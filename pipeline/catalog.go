package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

const (
	// catalogPageSize is the per-page limit accepted by the products.json
	// endpoint. Shopify serves at most 250 products per page.
	catalogPageSize = 250

	// maxMalformedPages bounds how many undecodable pages the fetcher will
	// skip before giving up on the remainder of the catalog.
	maxMalformedPages = 3
)

// catalogPage mirrors the JSON envelope of a products.json page.
type catalogPage struct {
	Products []catalogProduct `json:"products"`
}

type catalogProduct struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Handle      string           `json:"handle"`
	BodyHTML    string           `json:"body_html"`
	Vendor      string           `json:"vendor"`
	ProductType string           `json:"product_type"`
	Tags        []string         `json:"tags"`
	Variants    []catalogVariant `json:"variants"`
	Images      []catalogImage   `json:"images"`
}

type catalogVariant struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Option1        *string `json:"option1"`
	Option2        *string `json:"option2"`
	Option3        *string `json:"option3"`
	Price          string  `json:"price"`
	CompareAtPrice *string `json:"compare_at_price"`
	Available      bool    `json:"available"`
}

type catalogImage struct {
	Src string `json:"src"`
}

// catalogURL builds the products.json URL for a page number.
func catalogURL(target storeinsights.Target, page int) string {
	return target.URL(fmt.Sprintf("/products.json?limit=%d&page=%d", catalogPageSize, page))
}

// fetchCatalog pulls paginated product listings from the target. A
// non-empty firstPage reuses the probe's page 1 body instead of refetching
// it. The fetcher deduplicates by handle with
// first occurrence winning and stops on an empty page, a short page, the
// product cap, or a page that keeps failing after retries. A failed or
// malformed page yields a partial catalog, never an aborted run.
func (p *Pipeline) fetchCatalog(ctx context.Context, target storeinsights.Target, firstPage string) ([]storeinsights.Product, []storeinsights.ExtractionError) {
	limit := p.Config.MaxProducts
	if limit <= 0 {
		limit = 1000
	}

	var (
		products  []storeinsights.Product
		errs      []storeinsights.ExtractionError
		seen      = make(map[string]struct{})
		malformed int
	)

	appendPage := func(page []storeinsights.Product) (full bool) {
		for _, product := range page {
			if _, ok := seen[product.Handle]; ok {
				continue
			}
			seen[product.Handle] = struct{}{}
			products = append(products, product)
			if len(products) >= limit {
				return true
			}
		}
		return false
	}

	for pageNum := 1; ; pageNum++ {
		var body string
		if pageNum == 1 && firstPage != "" {
			body = firstPage
		} else {
			var err error
			body, err = p.fetch(ctx, target, catalogURL(target, pageNum))
			if err != nil {
				errs = append(errs, storeinsights.ExtractionError{
					Category: storeinsights.ErrPartialCatalog,
					Message:  fmt.Sprintf("catalog page %d failed after retries: %v", pageNum, err),
				})
				break
			}
		}

		page, err := decodeCatalogPage(body, target)
		if err != nil {
			errs = append(errs, storeinsights.ExtractionError{
				Category: storeinsights.ErrPartialCatalog,
				Message:  fmt.Sprintf("catalog page %d malformed: %v", pageNum, err),
			})
			malformed++
			if malformed >= maxMalformedPages {
				break
			}
			continue
		}

		if len(page) == 0 {
			break
		}
		if appendPage(page) {
			break
		}
		// A short page is the last page.
		if len(page) < catalogPageSize {
			break
		}
	}

	return products, errs
}

// probeCatalog checks whether page 1 of products.json responds with a valid
// catalog structure. A well-formed response is the strong platform signal;
// the body is reused as the first catalog page so it is fetched only once.
func (p *Pipeline) probeCatalog(ctx context.Context, target storeinsights.Target) (body string, ok bool) {
	body, err := p.fetch(ctx, target, catalogURL(target, 1))
	if err != nil {
		return "", false
	}
	var page catalogPage
	if err := json.Unmarshal([]byte(body), &page); err != nil {
		return "", false
	}
	return body, true
}

// decodeCatalogPage parses one products.json page into domain products.
func decodeCatalogPage(body string, target storeinsights.Target) ([]storeinsights.Product, error) {
	var page catalogPage
	if err := json.Unmarshal([]byte(body), &page); err != nil {
		return nil, err
	}

	products := make([]storeinsights.Product, 0, len(page.Products))
	for _, cp := range page.Products {
		if cp.Handle == "" || cp.Title == "" {
			continue
		}
		products = append(products, convertProduct(cp, target))
	}
	return products, nil
}

// convertProduct maps a raw catalog entry onto the domain product, deriving
// the price range across variants and availability from any variant.
func convertProduct(cp catalogProduct, target storeinsights.Target) storeinsights.Product {
	product := storeinsights.Product{
		ID:          cp.ID,
		Handle:      cp.Handle,
		Title:       cp.Title,
		Description: stripHTML(cp.BodyHTML),
		Vendor:      cp.Vendor,
		ProductType: cp.ProductType,
		Tags:        cp.Tags,
		URL:         target.URL("/products/" + cp.Handle),
	}

	for _, img := range cp.Images {
		if img.Src != "" {
			product.Images = append(product.Images, img.Src)
		}
	}

	for i, cv := range cp.Variants {
		price := parsePrice(cv.Price)
		variant := storeinsights.Variant{
			ID:        cv.ID,
			Title:     cv.Title,
			Price:     price,
			Available: cv.Available,
		}
		for _, opt := range []*string{cv.Option1, cv.Option2, cv.Option3} {
			if opt != nil && *opt != "" {
				variant.Options = append(variant.Options, *opt)
			}
		}
		product.Variants = append(product.Variants, variant)

		if i == 0 {
			product.Price = price
			product.MaxPrice = price
			if cv.CompareAtPrice != nil {
				product.CompareAtPrice = parsePrice(*cv.CompareAtPrice)
			}
		} else {
			if price < product.Price {
				product.Price = price
			}
			if price > product.MaxPrice {
				product.MaxPrice = price
			}
		}
		if cv.Available {
			product.Available = true
		}
	}

	return product
}

// parsePrice converts the string price fields Shopify emits ("19.99") into
// a float. Unparseable values become zero.
func parsePrice(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return price
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML reduces an HTML fragment to its text with collapsed whitespace.
func stripHTML(s string) string {
	return strings.Join(strings.Fields(tagPattern.ReplaceAllString(s, " ")), " ")
}

package storeinsights

// Product represents a single catalog entry from a storefront's
// machine-readable product listing. The handle is the platform-stable slug
// used as the join key between the catalog and homepage product links.
type Product struct {
	ID             int64     `json:"id"`
	Handle         string    `json:"handle"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Vendor         string    `json:"vendor,omitempty"`
	ProductType    string    `json:"productType,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	Price          float64   `json:"price"`
	MaxPrice       float64   `json:"maxPrice,omitempty"`
	CompareAtPrice float64   `json:"compareAtPrice,omitempty"`
	Images         []string  `json:"images,omitempty"`
	URL            string    `json:"url"`
	Available      bool      `json:"available"`
	Variants       []Variant `json:"variants,omitempty"`
}

// Variant is a specific purchasable configuration of a product.
type Variant struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Options   []string `json:"options,omitempty"`
	Price     float64  `json:"price"`
	Available bool     `json:"available"`
}

// Validate returns an error if the product lacks the fields required to
// participate in catalog joins.
func (p *Product) Validate() error {
	if p.Handle == "" {
		return Errorf(EINVALID, "product handle required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "product title required")
	}
	return nil
}

// HeroProduct is a catalog product promoted on the storefront's homepage,
// plus the promotional context it was found in. A HeroProduct always refers
// to an existing catalog entry; unmatched homepage links are never
// fabricated into heroes.
type HeroProduct struct {
	Product Product `json:"product"`

	// Context is the label of the homepage section the product link was
	// found under (e.g. "Featured", "Best Sellers"). Empty when the link
	// appeared outside any recognizable promotional section.
	Context string `json:"context,omitempty"`
}

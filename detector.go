package storeinsights

// Signal is an observable marker used to infer that a site runs Shopify.
type Signal string

// Detection signals. SignalCatalogEndpoint is the only strong signal: a
// well-formed response from the standard catalog endpoint is near-proof of
// the platform. The remaining signals are weak because unrelated sites can
// reference the same CDN or globals incidentally.
const (
	// SignalCatalogEndpoint means /products.json responded with a valid
	// catalog structure.
	SignalCatalogEndpoint Signal = "catalog_endpoint"

	// SignalThemeGlobal means the homepage source references a Shopify
	// JavaScript global (Shopify.theme, Shopify.shop).
	SignalThemeGlobal Signal = "theme_global"

	// SignalCDNAsset means the homepage's asset URLs reference the Shopify
	// CDN or a myshopify.com hostname.
	SignalCDNAsset Signal = "cdn_asset"

	// SignalSectionMarkup means the homepage markup carries Shopify section
	// classes or data attributes.
	SignalSectionMarkup Signal = "section_markup"
)

// Strong reports whether the signal alone is sufficient for detection.
func (s Signal) Strong() bool {
	return s == SignalCatalogEndpoint
}

// Detection is the detector's verdict for a target plus the signals that
// produced it.
type Detection struct {
	Detected bool     `json:"detected"`
	Signals  []Signal `json:"signals"`
}

// Decide applies the detection policy to a set of matched signals: one
// strong signal suffices, otherwise at least two weak signals must
// co-occur.
func Decide(signals []Signal) Detection {
	weak := 0
	for _, s := range signals {
		if s.Strong() {
			return Detection{Detected: true, Signals: signals}
		}
		weak++
	}
	return Detection{Detected: weak >= 2, Signals: signals}
}

// Detector inspects homepage HTML for platform markers. It reports only the
// markup-derived signals; the catalog endpoint probe is a network concern
// owned by the pipeline, which merges its result before calling Decide.
type Detector interface {
	Detect(html string) []Signal
}

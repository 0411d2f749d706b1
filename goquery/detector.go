// Package goquery provides HTML-level implementations of the storeinsights
// parsing interfaces: platform detection, homepage analysis, and FAQ markup
// parsing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Ensure Detector implements storeinsights.Detector at compile time.
var _ storeinsights.Detector = (*Detector)(nil)

// Detector identifies Shopify storefronts from homepage HTML. It checks for
// the theme JavaScript globals, Shopify CDN asset references, and the
// section markup the platform renders into every theme.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// themeGlobals appear in the inline script block Shopify injects into every
// storefront page.
var themeGlobals = []string{"Shopify.theme", "Shopify.shop", "window.Shopify"}

// cdnHosts are hostnames only Shopify-served assets reference.
var cdnHosts = []string{"cdn.shopify.com", ".myshopify.com", "shopify_pay"}

// Detect reports the markup-derived signals found in the homepage HTML.
// The catalog endpoint probe is a network concern the pipeline owns.
func (d *Detector) Detect(html string) []storeinsights.Signal {
	var signals []storeinsights.Signal

	for _, marker := range themeGlobals {
		if strings.Contains(html, marker) {
			signals = append(signals, storeinsights.SignalThemeGlobal)
			break
		}
	}

	if d.hasCDNAssets(html) {
		signals = append(signals, storeinsights.SignalCDNAsset)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return signals
	}
	if d.hasSectionMarkup(doc) {
		signals = append(signals, storeinsights.SignalSectionMarkup)
	}

	return signals
}

// hasCDNAssets checks asset URLs (scripts, stylesheets, images) for Shopify
// CDN hostnames. A raw substring check would also match prose that merely
// mentions the hostname, so only attribute values count.
func (d *Detector) hasCDNAssets(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	found := false
	doc.Find("script[src], link[href], img[src], source[srcset]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, attr := range []string{"src", "href", "srcset"} {
			value, exists := sel.Attr(attr)
			if !exists {
				continue
			}
			for _, host := range cdnHosts {
				if strings.Contains(value, host) {
					found = true
					return false
				}
			}
		}
		return true
	})
	return found
}

// hasSectionMarkup checks for the shopify-section wrappers and data
// attributes themes render around every content block.
func (d *Detector) hasSectionMarkup(doc *goquery.Document) bool {
	return doc.Find("[id^='shopify-section']").Length() > 0 ||
		doc.Find("[class*='shopify-section']").Length() > 0 ||
		doc.Find("[data-shopify]").Length() > 0 ||
		doc.Find(".shopify-payment-button").Length() > 0
}

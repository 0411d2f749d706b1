package mock

import (
	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var _ storeinsights.Detector = (*Detector)(nil)

// Detector is a mock implementation of storeinsights.Detector.
type Detector struct {
	DetectFn func(html string) []storeinsights.Signal
}

func (d *Detector) Detect(html string) []storeinsights.Signal {
	return d.DetectFn(html)
}

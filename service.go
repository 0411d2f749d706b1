package storeinsights

import "context"

// InsightsService runs the extraction pipeline against a raw target URL and
// returns the assembled report. A report is returned even when individual
// data categories fail; only a malformed URL or an unexpected internal
// fault produce an error instead of a report.
type InsightsService interface {
	AnalyzeStore(ctx context.Context, rawURL string) (*InsightsReport, error)
}

package storeinsights

import (
	"context"
	"time"
)

// Analysis is an archived pipeline run: the assembled report plus indexable
// metadata. Archiving happens outside the core pipeline, which itself is
// stateless; the archive exists so callers can retrieve past analyses.
type Analysis struct {
	ID            string          `json:"id"`
	Target        string          `json:"target"`
	BrandName     string          `json:"brandName"`
	TotalProducts int             `json:"totalProducts"`
	ContentHash   string          `json:"contentHash"`
	Report        *InsightsReport `json:"report"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.Target == "" {
		return Errorf(EINVALID, "analysis target required")
	}
	if a.Report == nil {
		return Errorf(EINVALID, "analysis report required")
	}
	return nil
}

// AnalysisService stores and retrieves archived analyses.
type AnalysisService interface {
	// SaveAnalysis archives an analysis, assigning its ID and CreatedAt.
	SaveAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByID retrieves an archived analysis by ID.
	// Returns ENOTFOUND if it does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an archived analysis.
	// Returns ENOTFOUND if it does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID     *string `json:"id"`
	Target *string `json:"target"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

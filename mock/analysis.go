package mock

import (
	"context"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var _ storeinsights.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of storeinsights.AnalysisService.
type AnalysisService struct {
	SaveAnalysisFn     func(ctx context.Context, analysis *storeinsights.Analysis) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*storeinsights.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter storeinsights.AnalysisFilter) ([]*storeinsights.Analysis, error)
	DeleteAnalysisFn   func(ctx context.Context, id string) error
}

func (s *AnalysisService) SaveAnalysis(ctx context.Context, analysis *storeinsights.Analysis) error {
	return s.SaveAnalysisFn(ctx, analysis)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*storeinsights.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter storeinsights.AnalysisFilter) ([]*storeinsights.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}

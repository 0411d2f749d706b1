package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
	main "github.com/Bhaskar-Gayen/Shopify-store-analyzer/cmd/storeinsights"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	report := &storeinsights.InsightsReport{
		Target:            "https://acme.example.com",
		BrandName:         "Acme Apparel",
		TotalProducts:     3,
		ExtractionSuccess: true,
	}

	t.Run("prints the report as indented JSON", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightsService{
			AnalyzeStoreFn: func(_ context.Context, url string) (*storeinsights.InsightsReport, error) {
				assert.Equal(t, "https://acme.example.com", url)
				return report, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Insights: insights,
		}

		cmd := &main.AnalyzeCmd{URL: "https://acme.example.com"}

		require.NoError(t, cmd.Run(deps))

		var decoded storeinsights.InsightsReport
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "Acme Apparel", decoded.BrandName)
		assert.Equal(t, 3, decoded.TotalProducts)
		assert.Contains(t, stdout.String(), "\n  ")
	})

	t.Run("archives the report when --save is set", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightsService{
			AnalyzeStoreFn: func(_ context.Context, _ string) (*storeinsights.InsightsReport, error) {
				return report, nil
			},
		}

		var saved *storeinsights.Analysis
		analyses := &mock.AnalysisService{
			SaveAnalysisFn: func(_ context.Context, analysis *storeinsights.Analysis) error {
				analysis.ID = "saved-id"
				saved = analysis
				return nil
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Insights: insights,
			Analyses: analyses,
		}

		cmd := &main.AnalyzeCmd{URL: "https://acme.example.com", Save: true}

		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, saved)
		assert.Equal(t, "https://acme.example.com", saved.Target)
		assert.Equal(t, "Acme Apparel", saved.BrandName)
		assert.Same(t, report, saved.Report)
		assert.Contains(t, stderr.String(), "saved-id")
	})

	t.Run("returns ENOTFOUND for a non-Shopify site", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightsService{
			AnalyzeStoreFn: func(_ context.Context, _ string) (*storeinsights.InsightsReport, error) {
				return &storeinsights.InsightsReport{
					Target:            "https://blog.example.com",
					ExtractionSuccess: false,
					Errors: []storeinsights.ExtractionError{
						{Category: storeinsights.ErrNotDetected, Message: "no signals"},
					},
				}, nil
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Insights: insights,
		}

		cmd := &main.AnalyzeCmd{URL: "https://blog.example.com"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, storeinsights.ENOTFOUND, storeinsights.ErrorCode(err))
		assert.Contains(t, stderr.String(), "does not appear to be a Shopify storefront")
	})

	t.Run("surfaces pipeline errors", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightsService{
			AnalyzeStoreFn: func(_ context.Context, _ string) (*storeinsights.InsightsReport, error) {
				return nil, storeinsights.Errorf(storeinsights.EINVALID, "invalid URL %q", "::")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Insights: insights,
		}

		cmd := &main.AnalyzeCmd{URL: "::"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, storeinsights.EINVALID, storeinsights.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

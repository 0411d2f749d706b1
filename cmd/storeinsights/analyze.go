package main

import (
	"encoding/json"
	"fmt"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	report, err := deps.Insights.AnalyzeStore(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storeinsights.ErrorMessage(err))
		return err
	}

	if !report.ExtractionSuccess {
		fmt.Fprintf(deps.Stderr, "error: %s does not appear to be a Shopify storefront\n", c.URL)
		return storeinsights.Errorf(storeinsights.ENOTFOUND, "%s does not appear to be a Shopify storefront", c.URL)
	}

	if c.Save {
		analysis := &storeinsights.Analysis{
			Target:        report.Target,
			BrandName:     report.BrandName,
			TotalProducts: report.TotalProducts,
			ContentHash:   report.ContentHash,
			Report:        report,
		}
		if err := deps.Analyses.SaveAnalysis(deps.Ctx, analysis); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", storeinsights.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Archived analysis %s\n", analysis.ID)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

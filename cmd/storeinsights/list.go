package main

import (
	"fmt"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := storeinsights.AnalysisFilter{Limit: c.Limit}
	if c.Target != "" {
		filter.Target = &c.Target
	}

	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storeinsights.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'storeinsights analyze --save' to archive one.")
		return nil
	}

	for _, a := range analyses {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d products  %s\n",
			a.ID, a.CreatedAt.Format("2006-01-02 15:04"), a.Target, a.TotalProducts, a.BrandName)
	}

	return nil
}

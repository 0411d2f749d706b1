package main

import (
	"encoding/json"
	"fmt"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		if storeinsights.ErrorCode(err) == storeinsights.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'storeinsights list' to see archived analyses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", storeinsights.ErrorMessage(err))
		}
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(analysis)
}

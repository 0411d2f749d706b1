package main

import (
	"fmt"

	storehttp "github.com/Bhaskar-Gayen/Shopify-store-analyzer/http"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/prometheus"
)

// Run executes the serve command. It blocks until the context is cancelled
// or the server fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.ListenAddr
	}

	server := storehttp.NewServer()
	server.Addr = addr
	server.Insights = deps.Insights
	server.Analyses = deps.Analyses
	server.Metrics = prometheus.NewMetrics()
	server.Logger = deps.Logger

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Open()
	}()

	select {
	case <-deps.Ctx.Done():
		fmt.Fprintln(deps.Stderr, "shutting down")
		return server.Close()
	case err := <-errCh:
		return err
	}
}

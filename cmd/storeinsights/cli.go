package main

import (
	"context"
	"io"
	"log/slog"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   storeinsights.Config
	DB       *sqlite.DB
	Insights storeinsights.InsightsService
	Analyses storeinsights.AnalysisService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a storefront and print the insights report"`
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
	List    ListCmd    `cmd:"" help:"List archived analyses"`
	Show    ShowCmd    `cmd:"" help:"Show an archived analysis by ID"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived analysis"`

	Config string `short:"c" help:"Path to a YAML config file" type:"path"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL  string `arg:"" help:"Storefront URL"`
	Save bool   `short:"s" help:"Archive the report after the run"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Target string `short:"t" help:"Filter by target base URL"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Analysis ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}

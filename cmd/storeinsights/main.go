package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/goquery"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/htmltomarkdown"
	storehttp "github.com/Bhaskar-Gayen/Shopify-store-analyzer/http"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/pipeline"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/readability"
	storeslog "github.com/Bhaskar-Gayen/Shopify-store-analyzer/slog"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/sqlite"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the analysis archive.
	DB *sqlite.DB

	// Services exposed for end-to-end testing.
	InsightsService storeinsights.InsightsService
	AnalysisService storeinsights.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Local overrides for config path and similar knobs.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("storeinsights"),
		kong.Description("Extract structured insights from Shopify storefronts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'storeinsights --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := cli.Config
	if configPath == "" {
		configPath = os.Getenv("STOREINSIGHTS_CONFIG")
	}
	config, err := storeinsights.LoadConfig(configPath)
	if err != nil {
		return err
	}
	deps.Config = config

	// Open the analysis archive.
	path := dbPath(config)
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set STOREINSIGHTS_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.DB = m.DB

	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.Analyses = m.AnalysisService

	// The extraction pipeline touches the network; only the commands that
	// analyze storefronts need it.
	command := kongCtx.Command()
	if strings.HasPrefix(command, "analyze") || strings.HasPrefix(command, "serve") {
		m.InsightsService = newInsightsService(config, deps.Logger)
		deps.Insights = m.InsightsService
	}

	return kongCtx.Run(deps)
}

// newInsightsService wires the full extraction pipeline from configuration.
func newInsightsService(config storeinsights.Config, logger *slog.Logger) storeinsights.InsightsService {
	fetcher := storehttp.NewFetcher(
		storehttp.WithTimeout(config.RequestTimeout.Std()),
		storehttp.WithUserAgent(config.UserAgent),
	)

	p := &pipeline.Pipeline{
		Fetcher:   storeslog.NewLoggingFetcher(fetcher, logger),
		Detector:  goquery.NewDetector(),
		Analyzer:  goquery.NewPageAnalyzer(),
		FAQs:      goquery.NewFAQParser(),
		Extractor: readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Sitemaps:  storeslog.NewLoggingSitemapService(storehttp.NewSitemapService(nil), logger),
		Limiter:   pipeline.NewHostLimiter(config.RequestsPerSecond),
		Config:    config,
	}

	return storeslog.NewLoggingInsightsService(p, logger)
}

func dbPath(config storeinsights.Config) string {
	if path := os.Getenv("STOREINSIGHTS_DB"); path != "" {
		return path
	}
	return config.DBPath
}

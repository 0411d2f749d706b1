// Package pipeline orchestrates storefront analysis. It gates on platform
// detection, then fans out over the catalog, homepage and content miners,
// isolating failures per data category and assembling a single report.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

var _ storeinsights.InsightsService = (*Pipeline)(nil)

// Pipeline runs the full extraction flow for one target per call. All
// per-run state is local to the call; a Pipeline is safe for concurrent
// use.
type Pipeline struct {
	Fetcher   storeinsights.Fetcher
	Detector  storeinsights.Detector
	Analyzer  storeinsights.Analyzer
	FAQs      storeinsights.FAQParser
	Extractor storeinsights.Extractor
	Converter storeinsights.Converter
	Sitemaps  storeinsights.SitemapService
	Limiter   storeinsights.HostLimiter
	Config    storeinsights.Config

	// RetryDelays overrides the backoff schedule derived from Config.
	// Tests use it to avoid real delays.
	RetryDelays []time.Duration

	// Candidate path guesses tried after links discovered on the site
	// itself. Nil selects the standard storefront paths.
	PolicyGuesses map[storeinsights.PolicyKind][]string
	FAQGuesses    []string
	AboutGuesses  []string
}

// fetch performs one rate-limited GET with retries.
func (p *Pipeline) fetch(ctx context.Context, target storeinsights.Target, url string) (string, error) {
	fetchOnce := func(ctx context.Context, url string) (string, error) {
		if p.Limiter != nil {
			if err := p.Limiter.Wait(ctx, target.Host()); err != nil {
				return "", err
			}
		}
		return p.Fetcher.Fetch(ctx, url)
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = RetryDelays(p.Config.MaxRetries, p.Config.RetryDelay.Std())
	}
	return FetchWithRetryDelays(ctx, url, fetchOnce, delays)
}

// AnalyzeStore runs the pipeline against a raw target URL. It returns an
// error only for a malformed URL; every downstream failure is recorded in
// the report instead.
func (p *Pipeline) AnalyzeStore(ctx context.Context, rawURL string) (*storeinsights.InsightsReport, error) {
	target, err := storeinsights.NewTarget(rawURL)
	if err != nil {
		return nil, err
	}

	if deadline := p.Config.PipelineDeadline.Std(); deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	report := &storeinsights.InsightsReport{
		Target:      target.String(),
		ExtractedAt: time.Now().UTC(),
	}

	// Detection stage. The homepage fetch and the catalog endpoint probe
	// run together; between them they produce every signal the verdict
	// considers. The probe's body doubles as catalog page 1.
	var (
		homepageHTML string
		homepageErr  error
		catalogFirst string
		catalogOK    bool
	)
	{
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			homepageHTML, homepageErr = p.fetch(gctx, target, target.String())
			return nil
		})
		g.Go(func() error {
			catalogFirst, catalogOK = p.probeCatalog(gctx, target)
			return nil
		})
		_ = g.Wait()
	}

	var signals []storeinsights.Signal
	if homepageErr == nil {
		signals = p.Detector.Detect(homepageHTML)
	}
	if catalogOK {
		signals = append(signals, storeinsights.SignalCatalogEndpoint)
	}

	detection := storeinsights.Decide(signals)
	if !detection.Detected {
		if ctx.Err() != nil {
			report.Errors = append(report.Errors, storeinsights.ExtractionError{
				Category: storeinsights.ErrTimeout,
				Detail:   "detect",
				Message:  "deadline exceeded before detection completed",
			})
		}
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrNotDetected,
			Message:  "no Shopify platform markers found on " + target.String(),
		})
		report.EnsureDefaults()
		report.ContentHash = report.ComputeContentHash()
		return report, nil
	}
	report.ExtractionSuccess = true

	if homepageErr != nil {
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrTransportFailure,
			Detail:   "homepage",
			Message:  "homepage unreachable: " + homepageErr.Error(),
		})
	}

	// Catalog, homepage analysis and sitemap discovery are independent.
	var (
		catalog     []storeinsights.Product
		catalogErrs []storeinsights.ExtractionError
		sitemapURLs []string
		analysis    = &storeinsights.PageAnalysis{}
	)
	{
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			catalog, catalogErrs = p.fetchCatalog(gctx, target, catalogFirst)
			return nil
		})
		if p.Sitemaps != nil {
			g.Go(func() error {
				// Sitemaps list the whole catalog too; miners only consult
				// content pages and policy pages.
				if urls, err := p.Sitemaps.DiscoverURLs(gctx, target); err == nil {
					sitemapURLs = filterCandidatePaths(urls)
				}
				return nil
			})
		}
		if homepageErr == nil {
			parsed, err := p.Analyzer.Analyze(homepageHTML, target)
			if err == nil {
				analysis = parsed
			}
		}
		_ = g.Wait()
	}
	report.Errors = append(report.Errors, catalogErrs...)
	report.ProductCatalog = catalog
	report.TotalProducts = len(catalog)

	// The deadline is attributed to the stage running when its expiry was
	// first observed; later stages inherit the expired context and stay
	// silent about it.
	timeoutStage := ""
	if ctx.Err() != nil {
		timeoutStage = "catalog"
	}

	// Hero resolution joins homepage product links against the catalog.
	heroes, unmatched := resolveHeroes(analysis.ProductRefs, catalog, p.Config.MaxHeroProducts)
	report.HeroProducts = heroes
	for _, handle := range unmatched {
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrHeroUnmatched,
			Detail:   handle,
			Message:  "homepage product link has no catalog entry: " + handle,
		})
	}

	// Miner stage. The page set shares fetched candidate pages across
	// miners; each category owns its local result until the join below.
	set := p.newPageSet(target)
	var homepage *page
	if homepageErr == nil {
		set.seed(target.String(), homepageHTML, analysis)
		homepage = &page{url: target.String(), html: homepageHTML, analysis: analysis}
	}

	report.SocialHandles = mineSocial(analysis.Links)
	report.ImportantLinks = classifyLinks(analysis.Links)

	var (
		contact    storeinsights.ContactDetails
		policies   storeinsights.PolicySet
		policyErrs []storeinsights.ExtractionError
		faqs       []storeinsights.FAQ
		brandCtx   string
	)
	{
		g, gctx := errgroup.WithContext(ctx)
		concurrency := p.Config.Concurrency
		if concurrency <= 0 {
			concurrency = 10
		}
		g.SetLimit(concurrency)

		g.Go(func() error {
			contact = p.mineContact(gctx, set, homepage, report.ImportantLinks)
			return nil
		})
		g.Go(func() error {
			policies, policyErrs = p.minePolicies(gctx, set, analysis.Links, sitemapURLs)
			return nil
		})
		g.Go(func() error {
			faqs = p.mineFAQs(gctx, set, homepage, analysis.Links, sitemapURLs)
			return nil
		})
		g.Go(func() error {
			brandCtx = p.mineBrandContext(gctx, set, homepage, analysis.Links, sitemapURLs)
			return nil
		})
		_ = g.Wait()
	}

	report.BrandName = brandName(homepage, target)
	report.ContactDetails = contact
	report.Policies = policies
	report.FAQs = faqs
	report.BrandContext = brandCtx

	if contact.Empty() {
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrContactEmpty,
			Message:  "no contact details found",
		})
	}
	if len(report.SocialHandles) == 0 {
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrSocialEmpty,
			Message:  "no social profiles found",
		})
	}
	report.Errors = append(report.Errors, policyErrs...)
	if len(faqs) == 0 {
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrFAQEmpty,
			Message:  "no FAQ content found",
		})
	}
	if brandCtx == "" {
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrBrandEmpty,
			Message:  "no brand story content found",
		})
	}
	if timeoutStage == "" && ctx.Err() != nil {
		timeoutStage = "miners"
	}
	if timeoutStage != "" {
		report.Errors = append(report.Errors, storeinsights.ExtractionError{
			Category: storeinsights.ErrTimeout,
			Detail:   timeoutStage,
			Message:  "deadline exceeded during the " + timeoutStage + " stage",
		})
	}

	report.EnsureDefaults()
	report.ContentHash = report.ComputeContentHash()
	return report, nil
}

// mineContact gathers contact candidates (homepage plus the contact page,
// when one was classified) and extracts contact details from them.
func (p *Pipeline) mineContact(ctx context.Context, set *pageSet, homepage *page, links storeinsights.ImportantLinks) storeinsights.ContactDetails {
	var pages []*page
	if homepage != nil {
		pages = append(pages, homepage)
	}
	if url, ok := links[storeinsights.LinkContactUs]; ok {
		if pg, fetched := set.get(ctx, url); fetched {
			pages = append(pages, pg)
		}
	}
	return extractContact(pages)
}

package storeinsights

import "context"

// Fetcher retrieves raw response bodies from URLs. Implementations own
// per-request timeouts and transport headers; retry policy belongs to the
// caller.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// Non-2xx statuses are returned as errors.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	Close() error
}

// HostLimiter throttles outbound requests per host. Requests to different
// hosts proceed independently; within one host, callers block until the
// limiter admits them.
type HostLimiter interface {
	Wait(ctx context.Context, host string) error
}

// Page is a candidate source page fetched during a pipeline run: the
// homepage, a discovered link target, or a well-known path guess. Miners
// consume pages read-only; a page is fetched at most once per run.
type Page struct {
	URL  string
	HTML string
}

package siteinfo

import "context"

// FetchResult holds the payload of a successful page fetch. It is
// discarded once the page has been processed.
type FetchResult struct {
	// URL is the address that was requested.
	URL string

	// FinalURL is the address after following redirects.
	FinalURL string

	// HTML is the raw response body.
	HTML string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url, following redirects. Failures
	// are tagged for diagnostics: ETIMEOUT for exceeded deadlines,
	// EUNREACHABLE for transport errors, EUNAVAILABLE for non-2xx
	// responses. No retries are attempted.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

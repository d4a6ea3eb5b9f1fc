package siteinfo

import (
	"context"
	"time"
)

// TitleMissing is the title recorded when a page has no usable <title>.
const TitleMissing = "N/A"

// MinSummaryInput is the minimum extracted-text length for
// summarization. Shorter texts produce no summary.
const MinSummaryInput = 75

// Analysis is the result of analyzing one website. It is assembled
// once per invocation and not modified after being returned.
type Analysis struct {
	// URL is the address the analysis was requested for.
	URL string

	// Title is the homepage title, or TitleMissing.
	Title string

	// Emails holds the unique addresses found across all pages
	// visited, sorted lexicographically.
	Emails []string

	// SocialLinks holds the unique social profile URLs found on the
	// homepage, sorted lexicographically.
	SocialLinks []string

	// AboutText is the main content of the About page, normalized.
	// Empty when no About link was found or the page yielded nothing.
	AboutText string

	// AboutSummary is the AI synopsis of AboutText. Empty when
	// AboutText is absent or shorter than MinSummaryInput. A value
	// with the "Error:" prefix records a failed summarization attempt
	// so callers can render it distinctly from a real summary.
	AboutSummary string

	// Elapsed is the total wall time of the analysis.
	Elapsed time.Duration
}

// LinkSet holds the classified links discovered on a page. About and
// Contact keep the first match in document order; Social accumulates
// every match, deduplicated by exact URL string.
type LinkSet struct {
	About   string
	Contact string
	Social  []string
}

// Analyzer runs a full site analysis.
type Analyzer interface {
	// Analyze fetches and processes the homepage plus any discovered
	// About/Contact pages. Failures on individual pages degrade that
	// page's contribution only; an error is returned solely for
	// invalid input.
	Analyze(ctx context.Context, url string) (*Analysis, error)
}

package siteinfo

import "context"

// AskRequest carries a question about a company website, plus optional
// context text previously extracted from the site.
type AskRequest struct {
	// URL identifies the company the question is about.
	URL string

	// Question is the user's free-form question.
	Question string

	// Context is extracted page text used to ground the answer.
	// May be empty.
	Context string
}

// Asker answers free-form questions about a company, possibly informed
// by live web search.
type Asker interface {
	Ask(ctx context.Context, req AskRequest) (string, error)
}

// Summarizer produces short natural-language synopses of extracted
// page text.
type Summarizer interface {
	// Summarize returns a 1-3 sentence synopsis of text. It returns
	// "" without error when text is shorter than MinSummaryInput or
	// the service produced no usable content; it returns an error on
	// request failure.
	Summarize(ctx context.Context, text string) (string, error)
}

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string
	URL     string
	Content string
}

// Searcher performs live web searches on behalf of the QA agent.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

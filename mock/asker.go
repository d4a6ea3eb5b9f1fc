package mock

import (
	"context"

	"github.com/fwojciec/siteinfo"
)

var _ siteinfo.Asker = (*Asker)(nil)

// Asker is a mock implementation of siteinfo.Asker.
type Asker struct {
	AskFn func(ctx context.Context, req siteinfo.AskRequest) (string, error)
}

func (a *Asker) Ask(ctx context.Context, req siteinfo.AskRequest) (string, error) {
	return a.AskFn(ctx, req)
}

var _ siteinfo.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of siteinfo.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.SummarizeFn(ctx, text)
}

var _ siteinfo.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of siteinfo.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]siteinfo.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]siteinfo.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

var _ siteinfo.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of siteinfo.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*siteinfo.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*siteinfo.Analysis, error) {
	return a.AnalyzeFn(ctx, url)
}

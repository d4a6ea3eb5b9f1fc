// Package slog provides logging decorators for siteinfo interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteinfo"
)

// Ensure LoggingFetcher implements siteinfo.Fetcher at compile time.
var _ siteinfo.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   siteinfo.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next siteinfo.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*siteinfo.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"code", siteinfo.ErrorCode(err),
			"error", siteinfo.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"final_url", result.FinalURL,
		"bytes", len(result.HTML),
		"duration", time.Since(begin),
	)
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Package mock provides function-field mock implementations of the
// siteinfo domain interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/siteinfo"
)

var _ siteinfo.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of siteinfo.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*siteinfo.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*siteinfo.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

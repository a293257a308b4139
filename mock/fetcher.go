package mock

import (
	"context"

	"github.com/fwojciec/justext"
)

var _ justext.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of justext.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ justext.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of justext.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ justext.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of justext.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string, filter *justext.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *justext.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL, filter)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Ensure LoggingSitemapService implements justext.SitemapService.
var _ justext.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   justext.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next justext.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the URL count.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *justext.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap",
			"url", siteURL,
			"count", len(urls),
			"filtered", filter != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, siteURL, filter)
}

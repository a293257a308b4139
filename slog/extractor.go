package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Ensure LoggingExtractor implements justext.Extractor.
var _ justext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   justext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next justext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs paragraph counts.
func (e *LoggingExtractor) Extract(ctx context.Context, html, sourceURL string, opts justext.ExtractOptions) (doc *justext.Document, err error) {
	defer func(begin time.Time) {
		var language string
		var paragraphs, good int
		if doc != nil {
			language = doc.Language
			paragraphs = len(doc.Paragraphs)
			good = len(doc.Good())
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"bytes", len(html),
			"language", language,
			"paragraphs", paragraphs,
			"good", good,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, html, sourceURL, opts)
}

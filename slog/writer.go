package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Ensure LoggingDocumentWriter implements justext.DocumentWriter.
var _ justext.DocumentWriter = (*LoggingDocumentWriter)(nil)

// LoggingDocumentWriter wraps a DocumentWriter with debug logging.
type LoggingDocumentWriter struct {
	next   justext.DocumentWriter
	logger *slog.Logger
}

// NewLoggingDocumentWriter creates a new LoggingDocumentWriter.
func NewLoggingDocumentWriter(next justext.DocumentWriter, logger *slog.Logger) *LoggingDocumentWriter {
	return &LoggingDocumentWriter{next: next, logger: logger}
}

// CreateDocument delegates to the wrapped writer and logs the stored ID.
func (w *LoggingDocumentWriter) CreateDocument(ctx context.Context, doc *justext.Document) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("store",
			"url", doc.SourceURL,
			"id", doc.ID,
			"hash", doc.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.CreateDocument(ctx, doc)
}

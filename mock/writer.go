package mock

import (
	"context"

	"github.com/fwojciec/justext"
)

var _ justext.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of justext.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *justext.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *justext.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}

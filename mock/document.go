package mock

import (
	"context"

	"github.com/fwojciec/justext"
)

var _ justext.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of justext.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *justext.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*justext.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter justext.DocumentFilter) ([]*justext.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *justext.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*justext.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter justext.DocumentFilter) ([]*justext.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

package mock

import (
	"context"

	"github.com/fwojciec/justext"
)

var _ justext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of justext.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html, sourceURL string, opts justext.ExtractOptions) (*justext.Document, error)
}

func (e *Extractor) Extract(ctx context.Context, html, sourceURL string, opts justext.ExtractOptions) (*justext.Document, error) {
	return e.ExtractFn(ctx, html, sourceURL, opts)
}

var _ justext.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of justext.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (justext.EventStream, error)
}

func (c *Cleaner) Clean(html string) (justext.EventStream, error) {
	return c.CleanFn(html)
}

var _ justext.BaselineExtractor = (*BaselineExtractor)(nil)

// BaselineExtractor is a mock implementation of justext.BaselineExtractor.
type BaselineExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *BaselineExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

package justext

import (
	"context"
	"strings"
	"time"
)

// Document is the extraction result for one HTML source.
type Document struct {
	ID          string      `json:"id"`
	SourceURL   string      `json:"sourceUrl"`
	Language    string      `json:"language"`
	ContentHash string      `json:"contentHash"`
	Paragraphs  []Paragraph `json:"paragraphs"`
	ExtractedAt time.Time   `json:"extractedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// Good returns the paragraphs classified as good.
func (d *Document) Good() []Paragraph {
	var good []Paragraph
	for _, p := range d.Paragraphs {
		if !p.Boilerplate {
			good = append(good, p)
		}
	}
	return good
}

// Text joins the good paragraphs with blank lines.
func (d *Document) Text() string {
	good := d.Good()
	parts := make([]string, 0, len(good))
	for _, p := range good {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument stores a new document and its paragraphs.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, without paragraphs.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and its paragraphs.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Language  *string `json:"language"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the body of url. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	Close() error
}

// Locator maps a paragraph back to the markup it was cut from.
type Locator interface {
	// Locate returns the outer HTML of the element at xpath in html.
	// Returns ENOTFOUND if no element matches.
	Locate(html, xpath string) (string, error)

	// LocateEach resolves several xpaths against a single parse of html.
	// Fails on the first xpath that matches nothing.
	LocateEach(html string, xpaths []string) ([]string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)

	// ConvertDocument renders the good paragraphs of doc as Markdown.
	ConvertDocument(doc *Document) (string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

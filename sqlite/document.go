package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/justext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ justext.DocumentService = (*DocumentService)(nil)

// DocumentService implements justext.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns it as 16 hex digits.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// CreateDocument stores doc and its paragraphs in one transaction. ID is
// always generated; ContentHash and ExtractedAt are filled in when empty.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *justext.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Text())
	}
	if doc.ExtractedAt.IsZero() {
		doc.ExtractedAt = time.Now()
	}
	doc.ExtractedAt = doc.ExtractedAt.UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, language, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Language, doc.ContentHash, doc.ExtractedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, p := range doc.Paragraphs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO paragraphs (
				document_id, position, text, dom_path, xpath, url, classification, first_classification,
				heading, headline, image, boilerplate, length, chars_in_links, link_density,
				tag_count, word_count, stop_word_count, stop_words_density
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, i, p.Text, p.DomPath, p.XPath, p.URL, p.Classification.String(), p.FirstClassification.String(),
			p.Heading, p.Headline, p.Image, p.Boilerplate, p.Length, p.CharsInLinks, p.LinkDensity,
			p.TagCount, p.WordCount, p.StopWordCount, p.StopWordsDensity); err != nil {
			return fmt.Errorf("failed to insert paragraph %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// FindDocumentByID retrieves a document together with its paragraphs.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*justext.Document, error) {
	doc, err := scanDocument(s.db.QueryRowContext(ctx, `
		SELECT id, source_url, language, content_hash, extracted_at
		FROM documents
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, justext.Errorf(justext.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.Paragraphs, err = s.findParagraphs(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
// Paragraphs are not loaded.
func (s *DocumentService) FindDocuments(ctx context.Context, filter justext.DocumentFilter) ([]*justext.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, language, content_hash, extracted_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Language != nil {
		query.WriteString(" AND language = ?")
		args = append(args, strings.ToLower(*filter.Language))
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	args = paginate(&query, args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*justext.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document and its paragraphs.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return justext.Errorf(justext.ENOTFOUND, "document not found")
	}

	return nil
}

func (s *DocumentService) findParagraphs(ctx context.Context, documentID string) ([]justext.Paragraph, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text, dom_path, xpath, url, classification, first_classification,
			heading, headline, image, boilerplate, length, chars_in_links, link_density,
			tag_count, word_count, stop_word_count, stop_words_density
		FROM paragraphs
		WHERE document_id = ?
		ORDER BY position ASC
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paragraphs []justext.Paragraph
	for rows.Next() {
		var p justext.Paragraph
		var class, firstClass string

		if err := rows.Scan(&p.Text, &p.DomPath, &p.XPath, &p.URL, &class, &firstClass,
			&p.Heading, &p.Headline, &p.Image, &p.Boilerplate, &p.Length, &p.CharsInLinks, &p.LinkDensity,
			&p.TagCount, &p.WordCount, &p.StopWordCount, &p.StopWordsDensity); err != nil {
			return nil, err
		}

		if p.Classification, err = justext.ParseClassification(class); err != nil {
			return nil, err
		}
		if p.FirstClassification, err = justext.ParseClassification(firstClass); err != nil {
			return nil, err
		}

		paragraphs = append(paragraphs, p)
	}

	return paragraphs, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*justext.Document, error) {
	var doc justext.Document
	var extractedAt string

	if err := row.Scan(&doc.ID, &doc.SourceURL, &doc.Language, &doc.ContentHash, &extractedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, extractedAt)
	if err != nil {
		return nil, fmt.Errorf("document %s: bad extracted_at %q: %w", doc.ID, extractedAt, err)
	}
	doc.ExtractedAt = t
	return &doc, nil
}

// paginate adds LIMIT and OFFSET for positive values. SQLite only accepts
// OFFSET after LIMIT, so an offset alone uses LIMIT -1.
func paginate(query *strings.Builder, args []any, limit, offset int) []any {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	return args
}

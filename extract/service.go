// Package extract implements the jusText pipeline over raw HTML.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/justext"
)

// detectionSample caps the text handed to the language detector.
const detectionSample = 4096

// Ensure Service implements justext.Extractor.
var _ justext.Extractor = (*Service)(nil)

// Service extracts documents from HTML.
type Service struct {
	cleaner   justext.Cleaner
	stopWords justext.StopWordsProvider
	detector  justext.LanguageDetector

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a new Service. detector may be nil, in which case
// ExtractOptions.DetectLanguage has no effect.
func NewService(cleaner justext.Cleaner, stopWords justext.StopWordsProvider, detector justext.LanguageDetector) *Service {
	return &Service{
		cleaner:   cleaner,
		stopWords: stopWords,
		detector:  detector,
		Now:       time.Now,
	}
}

// Extract cleans html and runs the classifier over it.
//
// Stop words come from opts.Language when set. Otherwise, with
// opts.DetectLanguage, the language is guessed from the document text; an
// undetected language leaves the stop-word set empty, so no block reaches
// the good or near-good density thresholds.
func (s *Service) Extract(ctx context.Context, html, sourceURL string, opts justext.ExtractOptions) (*justext.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	props := justext.DefaultClassifierProperties()
	if opts.Properties != nil {
		props = *opts.Properties
	}
	if err := props.Validate(); err != nil {
		return nil, err
	}

	stream, err := s.cleaner.Clean(html)
	if err != nil {
		return nil, err
	}
	events, err := collect(stream)
	if err != nil {
		return nil, err
	}

	language := strings.ToLower(strings.TrimSpace(opts.Language))
	if language == "" && opts.DetectLanguage && s.detector != nil {
		if code, ok := s.detector.Detect(sample(events)); ok {
			language = code
		}
	}

	var stopWords justext.StopWords
	if language != "" {
		stopWords, err = s.stopWords.StopWords(language)
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paragraphs, err := justext.Extract(justext.NewEventSlice(events...), stopWords, props, opts.KeepBoilerplate)
	if err != nil {
		return nil, err
	}

	doc := &justext.Document{
		SourceURL:   sourceURL,
		Language:    language,
		Paragraphs:  paragraphs,
		ExtractedAt: s.Now().UTC(),
	}
	doc.ContentHash = hashContent(doc.Text())
	return doc, nil
}

// collect drains stream. Errors are reported as EPARSE.
func collect(stream justext.EventStream) ([]justext.Event, error) {
	var events []justext.Event
	for {
		e, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, justext.WrapError(justext.EPARSE, err, "read event stream")
		}
		events = append(events, e)
	}
}

// sample joins character data up to detectionSample bytes.
func sample(events []justext.Event) string {
	var b strings.Builder
	for _, e := range events {
		if e.Kind != justext.CharactersEvent || justext.IsBlank(e.Text) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(e.Text))
		if b.Len() >= detectionSample {
			break
		}
	}
	return b.String()
}

// hashContent returns the hex xxHash of content.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

package justext

import "context"

// Extract segments stream into blocks, classifies and revises them, and
// returns the frozen paragraphs in document order. Boilerplate paragraphs
// are dropped unless keepBoilerplate is set.
//
// Returns EINVALID for invalid props and EPARSE if the stream fails; no
// partial result is returned in either case.
func Extract(stream EventStream, stopWords StopWords, props ClassifierProperties, keepBoilerplate bool) ([]Paragraph, error) {
	classifier, err := NewClassifier(props, stopWords)
	if err != nil {
		return nil, err
	}

	blocks, err := Segment(stream)
	if err != nil {
		return nil, err
	}

	classifier.Classify(blocks)
	classifier.Revise(blocks)

	paragraphs := make([]Paragraph, 0, len(blocks))
	for _, b := range blocks {
		if keepBoilerplate || !b.IsBoilerplate() {
			paragraphs = append(paragraphs, b.Freeze(stopWords))
		}
	}
	return paragraphs, nil
}

// ExtractOptions configures an Extractor call.
type ExtractOptions struct {
	// Language is the ISO 639-1 code of the stop-word list to use.
	Language string

	// DetectLanguage guesses the language when Language is empty.
	DetectLanguage bool

	// KeepBoilerplate includes non-good paragraphs in the result.
	KeepBoilerplate bool

	// Properties overrides the default classifier thresholds.
	Properties *ClassifierProperties
}

// Extractor extracts the main content of raw HTML documents.
type Extractor interface {
	// Extract cleans html, classifies its blocks and returns the result as
	// a Document for sourceURL. Returns EPARSE if html cannot be cleaned,
	// ENOTFOUND for an unknown language and EINVALID for bad properties.
	Extract(ctx context.Context, html, sourceURL string, opts ExtractOptions) (*Document, error)
}

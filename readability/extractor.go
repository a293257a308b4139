// Package readability provides a baseline extractor backed by
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/justext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements justext.BaselineExtractor at compile time.
var _ justext.BaselineExtractor = (*Extractor)(nil)

// Extractor extracts main text with Mozilla's Readability algorithm.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the main text of rawHTML with white space runs
// collapsed.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if justext.IsBlank(rawHTML) {
		return "", justext.Errorf(justext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", justext.WrapError(justext.EPARSE, err, "readability extraction failed")
	}
	return strings.TrimSpace(justext.NormalizeWhitespace(article.TextContent)), nil
}

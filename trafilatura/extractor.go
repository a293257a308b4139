// Package trafilatura provides a baseline extractor backed by go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/justext"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements justext.BaselineExtractor at compile time.
var _ justext.BaselineExtractor = (*Extractor)(nil)

// Extractor extracts main text with trafilatura's heuristics, falling back
// to its readability and distiller ports when the result looks too short.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{EnableFallback: true},
	}
}

// ExtractText returns the main text of rawHTML.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if justext.IsBlank(rawHTML) {
		return "", justext.Errorf(justext.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return "", justext.WrapError(justext.EPARSE, err, "trafilatura extraction failed")
	}
	return strings.TrimSpace(result.ContentText), nil
}

package justext

import (
	"strings"
	"unicode"
)

// BaselineExtractor extracts the main text of a page with a different
// algorithm, as a point of comparison.
type BaselineExtractor interface {
	// ExtractText returns the plain main text of html. Returns EINVALID
	// for empty input.
	ExtractText(html string) (string, error)
}

// Comparison scores extracted text against reference text by the overlap
// of their lower-cased words, counted with multiplicity.
type Comparison struct {
	Words          int     `json:"words"`
	ReferenceWords int     `json:"referenceWords"`
	Common         int     `json:"common"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// Compare scores text against reference. Precision is the share of text's
// words found in reference and recall the share of reference's words found
// in text. Both are 1 when both texts are empty and 0 when only one is.
func Compare(text, reference string) Comparison {
	words := tokenize(text)
	refWords := tokenize(reference)

	c := Comparison{Words: len(words), ReferenceWords: len(refWords)}
	if c.Words == 0 && c.ReferenceWords == 0 {
		c.Precision, c.Recall, c.F1 = 1, 1, 1
		return c
	}

	remaining := make(map[string]int, len(refWords))
	for _, w := range refWords {
		remaining[w]++
	}
	for _, w := range words {
		if remaining[w] > 0 {
			remaining[w]--
			c.Common++
		}
	}

	if c.Words > 0 {
		c.Precision = float64(c.Common) / float64(c.Words)
	}
	if c.ReferenceWords > 0 {
		c.Recall = float64(c.Common) / float64(c.ReferenceWords)
	}
	if c.Precision+c.Recall > 0 {
		c.F1 = 2 * c.Precision * c.Recall / (c.Precision + c.Recall)
	}
	return c
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

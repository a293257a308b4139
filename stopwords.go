package justext

import (
	"sort"
	"strings"
)

// StopWords is a case-folded set of stop words. The zero value is an empty
// set that matches nothing.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a set from words, lower-casing each of them.
// Blank entries are ignored.
func NewStopWords(words ...string) StopWords {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return StopWords{words: m}
}

// Contains reports whether word, compared case-insensitively, is a stop word.
func (s StopWords) Contains(word string) bool {
	if len(s.words) == 0 {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of stop words.
func (s StopWords) Len() int {
	return len(s.words)
}

// Words returns the stop words in sorted order.
func (s StopWords) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// StopWordsProvider loads stop-word lists by language.
type StopWordsProvider interface {
	// StopWords returns the list for an ISO 639-1 language code.
	// Returns ENOTFOUND if the language is unknown.
	StopWords(code string) (StopWords, error)

	// Languages returns the supported language codes.
	Languages() []string
}

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	// Detect returns a lower-case ISO 639-1 code. ok is false when the
	// language could not be determined reliably.
	Detect(text string) (code string, ok bool)
}

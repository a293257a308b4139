// Package lingua implements language detection with lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/justext"
	"github.com/pemistahl/lingua-go"
)

// Languages maps ISO 639-1 codes to the languages the detector knows.
var Languages = map[string]lingua.Language{
	"de": lingua.German,
	"en": lingua.English,
	"es": lingua.Spanish,
	"fr": lingua.French,
	"nl": lingua.Dutch,
}

// DefaultMinimumRelativeDistance makes the detector refuse to guess
// between closely scored languages.
const DefaultMinimumRelativeDistance = 0.1

// Ensure Detector implements justext.LanguageDetector.
var _ justext.LanguageDetector = (*Detector)(nil)

// Detector guesses the language of a text among a fixed set of languages.
// Safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector limited to codes. Codes without a known
// language are ignored; with fewer than two known codes every language in
// Languages is used.
func NewDetector(codes ...string) *Detector {
	var langs []lingua.Language
	for _, code := range codes {
		if lang, ok := Languages[strings.ToLower(code)]; ok {
			langs = append(langs, lang)
		}
	}
	if len(langs) < 2 {
		langs = langs[:0]
		for _, lang := range Languages {
			langs = append(langs, lang)
		}
	}

	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			WithMinimumRelativeDistance(DefaultMinimumRelativeDistance).
			Build(),
	}
}

// Detect returns the lower-case ISO 639-1 code of text's language.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

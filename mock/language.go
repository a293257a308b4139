package mock

import "github.com/fwojciec/justext"

var _ justext.StopWordsProvider = (*StopWordsProvider)(nil)

// StopWordsProvider is a mock implementation of justext.StopWordsProvider.
type StopWordsProvider struct {
	StopWordsFn func(code string) (justext.StopWords, error)
	LanguagesFn func() []string
}

func (p *StopWordsProvider) StopWords(code string) (justext.StopWords, error) {
	return p.StopWordsFn(code)
}

func (p *StopWordsProvider) Languages() []string {
	return p.LanguagesFn()
}

var _ justext.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of justext.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) (string, bool)
}

func (d *LanguageDetector) Detect(text string) (string, bool) {
	return d.DetectFn(text)
}

package mock

import "github.com/fwojciec/justext"

var _ justext.Converter = (*Converter)(nil)

// Converter is a mock implementation of justext.Converter.
type Converter struct {
	ConvertFn         func(html string) (string, error)
	ConvertDocumentFn func(doc *justext.Document) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

func (c *Converter) ConvertDocument(doc *justext.Document) (string, error) {
	return c.ConvertDocumentFn(doc)
}

var _ justext.Locator = (*Locator)(nil)

// Locator is a mock implementation of justext.Locator.
type Locator struct {
	LocateFn     func(html, xpath string) (string, error)
	LocateEachFn func(html string, xpaths []string) ([]string, error)
}

func (l *Locator) Locate(html, xpath string) (string, error) {
	return l.LocateFn(html, xpath)
}

func (l *Locator) LocateEach(html string, xpaths []string) ([]string, error) {
	return l.LocateEachFn(html, xpaths)
}

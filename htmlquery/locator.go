// Package htmlquery maps paragraph XPaths back onto the source HTML.
package htmlquery

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/fwojciec/justext"
	"golang.org/x/net/html"
)

// Ensure Locator implements justext.Locator.
var _ justext.Locator = (*Locator)(nil)

// Locator resolves XPaths against parsed HTML.
//
// Paragraph XPaths index siblings by tag name in the cleaned tree. Pruned
// elements (head, script, style) never share a tag name with content, so
// the paths also hold for the original markup.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the outer HTML of the first element at xpath.
func (l *Locator) Locate(raw, xpath string) (string, error) {
	doc, err := parse(raw)
	if err != nil {
		return "", err
	}
	return locate(doc, xpath)
}

// LocateEach resolves every xpath against one parse of raw. The result has
// one entry per xpath.
func (l *Locator) LocateEach(raw string, xpaths []string) ([]string, error) {
	doc, err := parse(raw)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(xpaths))
	for i, xpath := range xpaths {
		if out[i], err = locate(doc, xpath); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func parse(raw string) (*html.Node, error) {
	doc, err := htmlquery.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, justext.WrapError(justext.EPARSE, err, "failed to parse HTML")
	}
	return doc, nil
}

func locate(doc *html.Node, xpath string) (string, error) {
	node, err := htmlquery.Query(doc, xpath)
	if err != nil {
		return "", justext.WrapError(justext.EINVALID, err, "invalid xpath %q", xpath)
	}
	if node == nil {
		return "", justext.Errorf(justext.ENOTFOUND, "no element at %s", xpath)
	}
	return htmlquery.OutputHTML(node, true), nil
}

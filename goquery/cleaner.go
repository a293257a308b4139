package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/justext"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// DefaultPrunedSelectors lists the elements removed together with their
// content before segmentation.
var DefaultPrunedSelectors = []string{"head", "meta", "title", "script", "style"}

// Ensure Cleaner implements justext.Cleaner.
var _ justext.Cleaner = (*Cleaner)(nil)

// Cleaner parses tag soup into a well-formed tree, prunes non-content
// elements and flattens the tree into an event stream.
type Cleaner struct {
	pruned []string
	chrome bool
	logger *slog.Logger
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithPrunedSelectors removes elements matching selectors in addition to
// DefaultPrunedSelectors.
func WithPrunedSelectors(selectors ...string) Option {
	return func(c *Cleaner) {
		c.pruned = append(c.pruned, selectors...)
	}
}

// WithGeneratorChrome detects the site generator of each page and also
// prunes its navigation chrome.
func WithGeneratorChrome() Option {
	return func(c *Cleaner) {
		c.chrome = true
	}
}

// WithLogger reports pruned elements at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cleaner) {
		c.logger = logger
	}
}

// NewCleaner creates a new Cleaner.
func NewCleaner(opts ...Option) *Cleaner {
	c := &Cleaner{pruned: append([]string(nil), DefaultPrunedSelectors...)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean parses html and returns its events. Tag names are lower-cased,
// character data is NFC-normalized, and comments and doctypes are dropped.
func (c *Cleaner) Clean(raw string) (justext.EventStream, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, justext.WrapError(justext.EPARSE, err, "failed to parse HTML")
	}

	pruned := c.pruned
	if c.chrome {
		// Detect before pruning, the generator meta tag lives in head.
		if g := DetectGenerator(doc); g != GeneratorUnknown {
			if c.logger != nil {
				c.logger.Debug("generator", "name", string(g))
			}
			pruned = append(pruned[:len(pruned):len(pruned)], ChromeSelectors(g)...)
		}
	}

	for _, selector := range pruned {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		if c.logger != nil {
			c.logger.Debug("prune", "selector", selector, "count", sel.Length())
		}
		sel.Remove()
	}

	var events []justext.Event
	for _, n := range doc.Nodes {
		events = flatten(events, n)
	}
	return justext.NewEventSlice(events...), nil
}

// flatten appends the events of n and its descendants in document order.
func flatten(events []justext.Event, n *html.Node) []justext.Event {
	switch n.Type {
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		events = append(events, justext.StartTag(name, attributes(n)...))
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			events = flatten(events, child)
		}
		return append(events, justext.EndTag(name))
	case html.TextNode:
		return append(events, justext.Characters(norm.NFC.String(n.Data)))
	case html.DocumentNode:
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			events = flatten(events, child)
		}
	}
	return events
}

func attributes(n *html.Node) []justext.Attribute {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make([]justext.Attribute, len(n.Attr))
	for i, a := range n.Attr {
		attrs[i] = justext.Attribute{Name: a.Key, Value: a.Val}
	}
	return attrs
}

package htmltomarkdown

import (
	"html"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/justext"
)

// Ensure Converter implements justext.Converter at compile time.
var _ justext.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", justext.Errorf(justext.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(raw)
	if err != nil {
		return "", justext.WrapError(justext.EINTERNAL, err, "failed to convert HTML")
	}

	return result, nil
}

// ConvertDocument renders the good paragraphs of doc as Markdown. A
// paragraph inside an h1..h6 element becomes a heading of that level.
func (c *Converter) ConvertDocument(doc *justext.Document) (string, error) {
	var b strings.Builder
	for _, p := range doc.Good() {
		if p.Image && p.URL != "" {
			b.WriteString(`<p><img src="` + html.EscapeString(p.URL) + `" alt="` + html.EscapeString(p.Text) + `"></p>` + "\n")
			continue
		}
		tag := blockTag(p)
		b.WriteString("<" + tag + ">")
		b.WriteString(html.EscapeString(p.Text))
		b.WriteString("</" + tag + ">\n")
	}
	return c.Convert(b.String())
}

// blockTag returns the innermost heading element on the paragraph's path,
// or "p".
func blockTag(p justext.Paragraph) string {
	if !p.Heading {
		return "p"
	}
	parts := strings.Split(p.DomPath, ".")
	for i := len(parts) - 1; i >= 0; i-- {
		if t := parts[i]; len(t) == 2 && t[0] == 'h' && t[1] >= '1' && t[1] <= '6' {
			return t
		}
	}
	return "p"
}

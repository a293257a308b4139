package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/justext"
)

// writeText prints one paragraph per block, separated by blank lines.
// Boilerplate paragraphs, present only with --keep-boilerplate, are
// prefixed with their classification.
func writeText(w io.Writer, doc *justext.Document) error {
	parts := make([]string, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		if p.Boilerplate {
			parts = append(parts, fmt.Sprintf("[%s] %s", p.Classification, p.Text))
			continue
		}
		parts = append(parts, p.Text)
	}
	if len(parts) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "\n\n"))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMarkdown(w io.Writer, conv justext.Converter, doc *justext.Document) error {
	if len(doc.Good()) == 0 {
		return nil
	}
	md, err := conv.ConvertDocument(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.TrimSpace(md))
	return err
}

// writeHTML prints the source markup of each paragraph. Paragraphs cut
// from the same element are printed once.
func writeHTML(w io.Writer, loc justext.Locator, raw string, doc *justext.Document) error {
	if len(doc.Paragraphs) == 0 {
		return nil
	}

	xpaths := make([]string, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		if n := len(xpaths); n > 0 && xpaths[n-1] == p.XPath {
			continue
		}
		xpaths = append(xpaths, p.XPath)
	}

	fragments, err := loc.LocateEach(raw, xpaths)
	if err != nil {
		return err
	}
	for _, f := range fragments {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/justext"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := justext.DocumentFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}
	if c.Language != "" {
		filter.Language = &c.Language
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'justext batch' to extract some.")
		return nil
	}

	for _, d := range docs {
		language := d.Language
		if language == "" {
			language = "--"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", d.ID, d.ExtractedAt.Format("2006-01-02"), language, d.SourceURL)
	}

	return nil
}

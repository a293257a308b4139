package main

import (
	"fmt"

	"github.com/fwojciec/justext"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if justext.ErrorCode(err) == justext.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'justext list' to see stored documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "json":
		return writeJSON(deps.Stdout, doc)
	case "markdown":
		return writeMarkdown(deps.Stdout, deps.Converter, doc)
	default:
		fmt.Fprintf(deps.Stdout, "%s\n%s  %s  %s\n\n", doc.SourceURL, doc.ExtractedAt.Format("2006-01-02"), doc.Language, doc.ContentHash)
		return writeText(deps.Stdout, doc)
	}
}

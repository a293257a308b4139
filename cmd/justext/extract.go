package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/justext"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	props, err := c.Properties()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	raw, sourceURL, err := c.read(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	doc, err := deps.Extractor.Extract(deps.Ctx, raw, sourceURL, justext.ExtractOptions{
		Language:        c.Language,
		DetectLanguage:  c.Detect,
		KeepBoilerplate: c.KeepBoilerplate,
		Properties:      &props,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		if justext.ErrorCode(err) == justext.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: run 'justext languages' to see supported language codes")
		}
		return err
	}

	switch c.Format {
	case "json":
		return writeJSON(deps.Stdout, doc)
	case "markdown":
		return writeMarkdown(deps.Stdout, deps.Converter, doc)
	case "html":
		return writeHTML(deps.Stdout, deps.Locator, raw, doc)
	default:
		return writeText(deps.Stdout, doc)
	}
}

// read returns the HTML to extract and the URL recorded for it.
func (c *ExtractCmd) read(deps *Dependencies) (raw, sourceURL string, err error) {
	return readSource(deps, c.Source, c.SourceURL)
}

// readSource loads source as a URL, a file, or stdin when source is empty
// or "-". override replaces the recorded URL of file and stdin input.
func readSource(deps *Dependencies, source, override string) (raw, sourceURL string, err error) {
	switch {
	case isURL(source):
		raw, err = deps.Fetcher.Fetch(deps.Ctx, source)
		return raw, source, err

	case source == "" || source == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), orDefault(override, "stdin"), nil

	default:
		b, err := os.ReadFile(source)
		if err != nil {
			return "", "", justext.WrapError(justext.ENOTFOUND, err, "failed to read %q", source)
		}
		return string(b), orDefault(override, source), nil
	}
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

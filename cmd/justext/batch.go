package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	props, err := c.Properties()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	urls, err := c.readURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to process.")
		return nil
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Writer:      deps.Writer,
		RateLimiter: deps.RateLimiter,
		Options: justext.ExtractOptions{
			Language:        c.Language,
			DetectLanguage:  c.Detect,
			KeepBoilerplate: c.KeepBoilerplate,
			Properties:      &props,
		},
		Concurrency: c.Concurrency,
		SkipEmpty:   c.SkipEmpty,
		Logger:      deps.Logger,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Processing %d URLs\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", batch.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d documents (%d paragraphs, %s)\n",
		result.Saved, result.Paragraphs, batch.FormatBytes(result.Bytes))
	if result.Duplicates > 0 || result.Empty > 0 || result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Skipped %d duplicate, %d empty, %d failed\n",
			result.Duplicates, result.Empty, result.Failed)
	}
	return nil
}

func (c *BatchCmd) readURLs(deps *Dependencies) ([]string, error) {
	if c.Sitemap != "" {
		return c.discoverURLs(deps)
	}
	if len(c.Include) > 0 || len(c.Exclude) > 0 {
		return nil, justext.Errorf(justext.EINVALID, "--include and --exclude require --sitemap")
	}

	var r io.Reader = deps.Stdin
	if c.Input != "" && c.Input != "-" {
		f, err := os.Open(c.Input)
		if err != nil {
			return nil, justext.WrapError(justext.ENOTFOUND, err, "failed to open %q", c.Input)
		}
		defer f.Close()
		r = f
	}
	return batch.ReadURLs(r)
}

func (c *BatchCmd) discoverURLs(deps *Dependencies) ([]string, error) {
	if c.Input != "" {
		return nil, justext.Errorf(justext.EINVALID, "use either an input file or --sitemap")
	}

	filter, err := justext.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(deps.Stdout, "  Found %d URLs in sitemap\n", len(urls))
	return urls, nil
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/justext"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	baseline, ok := deps.Baselines[c.Baseline]
	if !ok {
		err := justext.Errorf(justext.EINVALID, "unknown baseline %q", c.Baseline)
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	props, err := c.Properties()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	raw, sourceURL, err := readSource(deps, c.Source, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	doc, err := deps.Extractor.Extract(deps.Ctx, raw, sourceURL, justext.ExtractOptions{
		Language:       c.Language,
		DetectLanguage: c.Detect,
		Properties:     &props,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	reference, err := baseline.ExtractText(raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Baseline, justext.ErrorMessage(err))
		return err
	}

	cmp := justext.Compare(doc.Text(), reference)

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Source   string `json:"source"`
			Baseline string `json:"baseline"`
			justext.Comparison
		}{sourceURL, c.Baseline, cmp})
	}

	fmt.Fprintf(deps.Stdout, "%-12s %d words\n", "justext", cmp.Words)
	fmt.Fprintf(deps.Stdout, "%-12s %d words\n", c.Baseline, cmp.ReferenceWords)
	fmt.Fprintf(deps.Stdout, "%-12s %d words\n", "common", cmp.Common)
	fmt.Fprintf(deps.Stdout, "%-12s %.3f\n", "precision", cmp.Precision)
	fmt.Fprintf(deps.Stdout, "%-12s %.3f\n", "recall", cmp.Recall)
	fmt.Fprintf(deps.Stdout, "%-12s %.3f\n", "f1", cmp.F1)
	return nil
}

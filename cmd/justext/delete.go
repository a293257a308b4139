package main

import (
	"fmt"

	"github.com/fwojciec/justext"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return justext.Errorf(justext.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if justext.ErrorCode(err) == justext.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'justext list' to see stored documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.ID)
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/dashdoc"
)

// Run executes the mirror command.
func (c *MirrorCmd) Run(deps *Dependencies) error {
	progress := func(p dashdoc.MirrorProgress) {
		if p.Status == dashdoc.MirrorFailed {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.URL, p.Error)
		}
	}

	result, err := deps.Mirror.Mirror(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Mirrored %d, skipped %d, failed %d\n",
		result.Fetched, result.Skipped, result.Failed)

	return nil
}

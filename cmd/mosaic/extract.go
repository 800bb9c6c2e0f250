package main

import (
	"fmt"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = fs.OutputPath(c.Input, deps.OutputDir)
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, c.Input, output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d records to %s\n", result.Records, result.Output)
	if result.SnapshotID != "" {
		fmt.Fprintf(deps.Stdout, "Saved snapshot %s\n", result.SnapshotID)
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/scrape"
)

// maxPathLen bounds the paths printed per document.
const maxPathLen = 60

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	outDir := c.Out
	if outDir == "" {
		outDir = deps.OutputDir
	}

	if c.Concurrency > 0 {
		deps.Scraper.Concurrency = c.Concurrency
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d documents\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  failed %s: %s\n",
				scrape.TruncatePath(event.Input, maxPathLen), mosaic.ErrorMessage(event.Error))
		}
	}

	results, err := deps.Scraper.ScrapeAll(deps.Ctx, c.Inputs, outDir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}

	var total int
	for _, result := range results {
		total += result.Records
		fmt.Fprintf(deps.Stdout, "  Extracted %d records to %s (%s read)\n",
			result.Records, scrape.TruncatePath(result.Output, maxPathLen), scrape.FormatBytes(result.Bytes))
	}
	fmt.Fprintf(deps.Stdout, "Extracted %d records from %d documents\n", total, len(results))

	return nil
}

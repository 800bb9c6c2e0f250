package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	outDir := c.Out
	if outDir == "" {
		outDir = deps.OutputDir
	}

	watcher, err := fs.NewWatcher(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(deps.Stdout, "Watching %s for saved result pages\n", c.Dir)

	err = watcher.Watch(ctx, func(path string) {
		result, err := deps.Scraper.Scrape(ctx, path, fs.OutputPath(path, outDir))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", path, mosaic.ErrorMessage(err))
			return
		}
		fmt.Fprintf(deps.Stdout, "Extracted %d records to %s\n", result.Records, result.Output)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}

	return nil
}

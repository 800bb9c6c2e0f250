package main

import (
	"context"
	"io"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	OutputDir string
	Snapshots mosaic.SnapshotService
	Scraper   *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" env:"MOSAIC_CONFIG" help:"Path to a YAML config file"`
	Origin  string `help:"Origin prepended to path-only result links"`
	Verbose bool   `short:"v" help:"Log every pipeline stage to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract records from a saved result page"`
	Batch   BatchCmd   `cmd:"" help:"Extract records from several saved result pages"`
	Watch   WatchCmd   `cmd:"" help:"Extract records whenever a page is saved into a directory"`
	List    ListCmd    `cmd:"" help:"List stored snapshots"`
	Records RecordsCmd `cmd:"" help:"Show the records of the latest snapshot with a name"`
	Delete  DeleteCmd  `cmd:"" help:"Delete every snapshot with a name"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input  string `arg:"" optional:"" default:"files/picasso-paintings.html" help:"Saved result page"`
	Output string `arg:"" optional:"" help:"Output JSON file (default: <output_dir>/<name>.json)"`
	Save   bool   `short:"s" help:"Also store the records as a snapshot"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Inputs      []string `arg:"" help:"Saved result pages"`
	Out         string   `short:"o" help:"Output directory (default: output_dir from config)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent document limit"`
	Save        bool     `short:"s" help:"Also store the records as snapshots"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Dir  string `arg:"" help:"Directory of saved result pages"`
	Out  string `short:"o" help:"Output directory (default: output_dir from config)"`
	Save bool   `short:"s" help:"Also store the records as snapshots"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Name string `arg:"" help:"Snapshot name"`
	JSON bool   `name:"json" help:"Print records as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Snapshot name"`
	Force bool   `help:"Confirm deletion"`
}

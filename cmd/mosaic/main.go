package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
	"github.com/fwojciec/mosaic/goquery"
	"github.com/fwojciec/mosaic/normalize"
	"github.com/fwojciec/mosaic/scrape"
	mosslog "github.com/fwojciec/mosaic/slog"
	"github.com/fwojciec/mosaic/sqlite"
	"github.com/fwojciec/mosaic/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error loading .env file: %v\n", err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService mosaic.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mosaic"),
		kong.Description("Extract image search results from saved result pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mosaic --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}
	deps.OutputDir = cfg.OutputDir

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	save := (cmd == "extract" && cli.Extract.Save) ||
		(cmd == "batch" && cli.Batch.Save) ||
		(cmd == "watch" && cli.Watch.Save)
	if save || cmd == "list" || cmd == "records" || cmd == "delete" {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MOSAIC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SnapshotService = sqlite.NewSnapshotService(m.DB)
		deps.Snapshots = m.SnapshotService
	}

	if cmd == "extract" || cmd == "batch" || cmd == "watch" {
		origin := cfg.Origin
		if cli.Origin != "" {
			origin = cli.Origin
		}

		deps.Scraper = newScraper(cfg.Selectors, origin, logger)
		if save {
			deps.Scraper.Snapshots = deps.Snapshots
		}
	}

	return kongCtx.Run(deps)
}

// newScraper wires the file-based extraction pipeline. A non-nil logger
// wraps every stage with logging.
func newScraper(selectors mosaic.Selectors, origin string, logger *slog.Logger) *scrape.Scraper {
	var documents mosaic.DocumentReader = fs.NewDocumentReader()
	var extractor mosaic.Extractor = goquery.NewExtractorWithSelectors(selectors)
	var normalizer mosaic.Normalizer = normalize.NewNormalizer(origin)
	var records mosaic.RecordWriter = fs.NewRecordWriter()

	if logger != nil {
		documents = mosslog.NewLoggingDocumentReader(documents, logger)
		extractor = mosslog.NewLoggingExtractor(extractor, logger)
		normalizer = mosslog.NewLoggingNormalizer(normalizer, logger)
		records = mosslog.NewLoggingRecordWriter(records, logger)
	}

	return &scrape.Scraper{
		Documents:  documents,
		Extractor:  extractor,
		Normalizer: normalizer,
		Records:    records,
	}
}

func defaultDBPath() string {
	if path := os.Getenv("MOSAIC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mosaic.db"
	}
	return filepath.Join(home, ".mosaic", "mosaic.db")
}

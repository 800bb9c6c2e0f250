package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
	"github.com/fwojciec/mosaic/scrape"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, mosaic.SnapshotFilter{Name: &c.Name, Limit: 1})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'mosaic list' to see available snapshots.\n", c.Name)
		return mosaic.Errorf(mosaic.ENOTFOUND, "snapshot %q not found", c.Name)
	}

	records, err := deps.Snapshots.FindRecords(deps.Ctx, snapshots[0].ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}

	if c.JSON {
		b, err := fs.FormatRecords(records)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
			return err
		}
		_, err = deps.Stdout.Write(b)
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "Snapshot %q has no records.\n", c.Name)
		return nil
	}

	for i, r := range records {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, r.Title)
		if len(r.Extensions) > 0 {
			fmt.Fprintf(deps.Stdout, "   %s\n", strings.Join(r.Extensions, ", "))
		}
		fmt.Fprintf(deps.Stdout, "   %s\n", r.Link)
		fmt.Fprintf(deps.Stdout, "   image: %s\n", describeImage(r.Image))
	}

	return nil
}

// describeImage summarizes an image field without printing inline data.
func describeImage(image *string) string {
	switch {
	case image == nil:
		return "none"
	case strings.HasPrefix(*image, "data:"):
		mediaType, _, _ := strings.Cut(strings.TrimPrefix(*image, "data:"), ";")
		return fmt.Sprintf("inline %s (%s)", mediaType, scrape.FormatBytes(len(*image)))
	default:
		return *image
	}
}

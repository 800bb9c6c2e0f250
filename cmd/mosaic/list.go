package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/mosaic"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, mosaic.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'mosaic extract --save' to create one.")
		return nil
	}

	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d records  %s  %s\n",
			s.ID, s.Name, s.RecordCount, s.CreatedAt.Format(time.DateTime), s.SourcePath)
	}

	return nil
}

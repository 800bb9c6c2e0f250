package main

import (
	"fmt"

	"github.com/fwojciec/mosaic"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return mosaic.Errorf(mosaic.EINVALID, "use --force to confirm deletion")
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, mosaic.SnapshotFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'mosaic list' to see available snapshots.\n", c.Name)
		return mosaic.Errorf(mosaic.ENOTFOUND, "snapshot %q not found", c.Name)
	}

	for _, s := range snapshots {
		if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, s.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mosaic.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d snapshots named %q\n", len(snapshots), c.Name)
	return nil
}

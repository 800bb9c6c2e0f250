package mosaic

import (
	"context"
	"time"
)

// Snapshot represents one processed HTML document and its stored records.
type Snapshot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SourcePath  string    `json:"sourcePath"`
	ContentHash string    `json:"contentHash"`
	RecordCount int       `json:"recordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "snapshot name required")
	}
	if s.SourcePath == "" {
		return Errorf(EINVALID, "snapshot source path required")
	}
	return nil
}

// SnapshotService represents a service for managing stored snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot together with its records.
	// The records keep the order they are given in.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot, records []*Record) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// FindRecords retrieves the records of a snapshot in their original order.
	// Returns ENOTFOUND if snapshot does not exist.
	FindRecords(ctx context.Context, snapshotID string) ([]*Record, error)

	// DeleteSnapshot permanently removes a snapshot and its records.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

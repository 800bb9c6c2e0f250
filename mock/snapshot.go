package mock

import (
	"context"

	"github.com/fwojciec/mosaic"
)

var _ mosaic.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of mosaic.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snapshot *mosaic.Snapshot, records []*mosaic.Record) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*mosaic.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter mosaic.SnapshotFilter) ([]*mosaic.Snapshot, error)
	FindRecordsFn      func(ctx context.Context, snapshotID string) ([]*mosaic.Record, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *mosaic.Snapshot, records []*mosaic.Record) error {
	return s.CreateSnapshotFn(ctx, snapshot, records)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*mosaic.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter mosaic.SnapshotFilter) ([]*mosaic.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) FindRecords(ctx context.Context, snapshotID string) ([]*mosaic.Record, error) {
	return s.FindRecordsFn(ctx, snapshotID)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}

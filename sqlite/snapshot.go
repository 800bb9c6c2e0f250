package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/mosaic"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mosaic.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements mosaic.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot stores a snapshot and its records in one transaction.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *mosaic.Snapshot, records []*mosaic.Record) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	snapshot.ID = uuid.New().String()
	snapshot.CreatedAt = time.Now().UTC()
	snapshot.RecordCount = len(records)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, name, source_path, content_hash, record_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.Name, snapshot.SourcePath, snapshot.ContentHash, snapshot.RecordCount,
		snapshot.CreatedAt.Format(timeFormat))
	if err != nil {
		return err
	}

	for i, record := range records {
		extensions, err := encodeExtensions(record.Extensions)
		if err != nil {
			return err
		}

		var image sql.NullString
		if record.Image != nil {
			image = sql.NullString{String: *record.Image, Valid: true}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO records (id, snapshot_id, position, title, extensions, link, image)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), snapshot.ID, i, record.Title, extensions, record.Link, image)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*mosaic.Snapshot, error) {
	snapshots, err := s.FindSnapshots(ctx, mosaic.SnapshotFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, mosaic.Errorf(mosaic.ENOTFOUND, "snapshot not found")
	}
	return snapshots[0], nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter mosaic.SnapshotFilter) ([]*mosaic.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_path, content_hash, record_count, created_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*mosaic.Snapshot
	for rows.Next() {
		var snapshot mosaic.Snapshot
		var createdAt string

		if err := rows.Scan(&snapshot.ID, &snapshot.Name, &snapshot.SourcePath, &snapshot.ContentHash,
			&snapshot.RecordCount, &createdAt); err != nil {
			return nil, err
		}

		if snapshot.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}

// FindRecords retrieves the records of a snapshot in their original order.
func (s *SnapshotService) FindRecords(ctx context.Context, snapshotID string) ([]*mosaic.Record, error) {
	if _, err := s.FindSnapshotByID(ctx, snapshotID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, extensions, link, image
		FROM records
		WHERE snapshot_id = ?
		ORDER BY position ASC
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*mosaic.Record{}
	for rows.Next() {
		var record mosaic.Record
		var extensions string
		var image sql.NullString

		if err := rows.Scan(&record.Title, &extensions, &record.Link, &image); err != nil {
			return nil, err
		}

		if record.Extensions, err = decodeExtensions(extensions); err != nil {
			return nil, err
		}
		if image.Valid {
			record.Image = &image.String
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot and its records.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mosaic.Errorf(mosaic.ENOTFOUND, "snapshot not found")
	}

	return nil
}

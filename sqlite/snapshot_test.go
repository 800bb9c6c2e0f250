package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func testRecords() []*mosaic.Record {
	return []*mosaic.Record{
		{
			Title:      "The Starry Night",
			Extensions: []string{"1889"},
			Link:       "https://www.google.com/search?q=starry",
			Image:      ptr("data:image/jpeg;base64,STARRY"),
		},
		{
			Title:      "Sunflowers",
			Extensions: []string{},
			Link:       "https://example.com/sunflowers",
		},
	}
}

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("creates snapshot with generated fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))
		snapshot := &mosaic.Snapshot{
			Name:        "van-gogh-paintings",
			SourcePath:  "files/van-gogh-paintings.html",
			ContentHash: "abc123",
		}

		err := svc.CreateSnapshot(context.Background(), snapshot, testRecords())

		require.NoError(t, err)
		assert.NotEmpty(t, snapshot.ID)
		assert.False(t, snapshot.CreatedAt.IsZero())
		assert.Equal(t, 2, snapshot.RecordCount)
	})

	t.Run("validates snapshot", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))

		err := svc.CreateSnapshot(context.Background(), &mosaic.Snapshot{}, nil)

		require.Error(t, err)
		assert.Equal(t, mosaic.EINVALID, mosaic.ErrorCode(err))
	})

	t.Run("stores snapshot without records", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))
		snapshot := &mosaic.Snapshot{Name: "empty", SourcePath: "files/empty.html"}

		err := svc.CreateSnapshot(context.Background(), snapshot, nil)

		require.NoError(t, err)
		records, err := svc.FindRecords(context.Background(), snapshot.ID)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestSnapshotService_FindSnapshotByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored snapshot", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))
		snapshot := &mosaic.Snapshot{Name: "picasso", SourcePath: "files/picasso.html", ContentHash: "ff"}
		require.NoError(t, svc.CreateSnapshot(context.Background(), snapshot, testRecords()))

		got, err := svc.FindSnapshotByID(context.Background(), snapshot.ID)

		require.NoError(t, err)
		assert.Equal(t, snapshot.ID, got.ID)
		assert.Equal(t, "picasso", got.Name)
		assert.Equal(t, "files/picasso.html", got.SourcePath)
		assert.Equal(t, "ff", got.ContentHash)
		assert.Equal(t, 2, got.RecordCount)
		assert.True(t, snapshot.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))

		_, err := svc.FindSnapshotByID(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, mosaic.ENOTFOUND, mosaic.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("filters by name and returns newest first", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewSnapshotService(MustOpenDB(t))
		older := &mosaic.Snapshot{Name: "picasso", SourcePath: "a/picasso.html"}
		other := &mosaic.Snapshot{Name: "van-gogh", SourcePath: "a/van-gogh.html"}
		newer := &mosaic.Snapshot{Name: "picasso", SourcePath: "b/picasso.html"}
		require.NoError(t, svc.CreateSnapshot(ctx, older, nil))
		require.NoError(t, svc.CreateSnapshot(ctx, other, nil))
		require.NoError(t, svc.CreateSnapshot(ctx, newer, nil))

		name := "picasso"
		got, err := svc.FindSnapshots(ctx, mosaic.SnapshotFilter{Name: &name})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, newer.ID, got[0].ID)
		assert.Equal(t, older.ID, got[1].ID)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewSnapshotService(MustOpenDB(t))
		require.NoError(t, svc.CreateSnapshot(ctx, &mosaic.Snapshot{Name: "a", SourcePath: "a.html", ContentHash: "h1"}, nil))
		require.NoError(t, svc.CreateSnapshot(ctx, &mosaic.Snapshot{Name: "b", SourcePath: "b.html", ContentHash: "h2"}, nil))

		hash := "h2"
		got, err := svc.FindSnapshots(ctx, mosaic.SnapshotFilter{ContentHash: &hash})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewSnapshotService(MustOpenDB(t))
		for _, name := range []string{"one", "two", "three"} {
			require.NoError(t, svc.CreateSnapshot(ctx, &mosaic.Snapshot{Name: name, SourcePath: name + ".html"}, nil))
		}

		limited, err := svc.FindSnapshots(ctx, mosaic.SnapshotFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		offset, err := svc.FindSnapshots(ctx, mosaic.SnapshotFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, offset, 1)
		assert.Equal(t, "one", offset[0].Name)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))

		name := "missing"
		got, err := svc.FindSnapshots(context.Background(), mosaic.SnapshotFilter{Name: &name})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSnapshotService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("returns records in original order", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewSnapshotService(MustOpenDB(t))
		snapshot := &mosaic.Snapshot{Name: "van-gogh", SourcePath: "van-gogh.html"}
		require.NoError(t, svc.CreateSnapshot(ctx, snapshot, testRecords()))

		got, err := svc.FindRecords(ctx, snapshot.ID)

		require.NoError(t, err)
		assert.Equal(t, testRecords(), got)
	})

	t.Run("returns ENOTFOUND for unknown snapshot", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))

		_, err := svc.FindRecords(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, mosaic.ENOTFOUND, mosaic.ErrorCode(err))
	})
}

func TestSnapshotService_DeleteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot and its records", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		db := MustOpenDB(t)
		svc := sqlite.NewSnapshotService(db)
		snapshot := &mosaic.Snapshot{Name: "van-gogh", SourcePath: "van-gogh.html"}
		require.NoError(t, svc.CreateSnapshot(ctx, snapshot, testRecords()))

		err := svc.DeleteSnapshot(ctx, snapshot.ID)

		require.NoError(t, err)
		_, err = svc.FindSnapshotByID(ctx, snapshot.ID)
		assert.Equal(t, mosaic.ENOTFOUND, mosaic.ErrorCode(err))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(MustOpenDB(t))

		err := svc.DeleteSnapshot(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, mosaic.ENOTFOUND, mosaic.ErrorCode(err))
	})
}

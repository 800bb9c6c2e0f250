package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewWatcher(filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.Equal(t, mosaic.ENOTFOUND, mosaic.ErrorCode(err))
	})

	t.Run("returns EINVALID for a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		_, err := fs.NewWatcher(path)

		require.Error(t, err)
		assert.Equal(t, mosaic.EINVALID, mosaic.ErrorCode(err))
	})
}

func TestWatcher_Watch(t *testing.T) {
	t.Parallel()

	t.Run("reports written documents and ignores other files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := fs.NewWatcher(dir)
		require.NoError(t, err)
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		paths := make(chan string, 16)
		done := make(chan error, 1)
		go func() {
			done <- w.Watch(ctx, func(path string) {
				select {
				case paths <- path:
				default:
				}
			})
		}()

		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.html"), []byte("x"), 0644))
		document := filepath.Join(dir, "picasso-paintings.html")
		require.NoError(t, os.WriteFile(document, []byte("<html></html>"), 0644))

		select {
		case got := <-paths:
			assert.Equal(t, document, got)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for document event")
		}

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not stop after cancel")
		}
	})
}

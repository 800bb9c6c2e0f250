package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentReader_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ mosaic.DocumentReader = &fs.DocumentReader{}
}

func TestDocumentReader_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads utf-8 document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "paintings.html")
		html := `<html><head><meta charset="utf-8"></head><body><div class="pgNMRc">Café Terrace</div></body></html>`
		require.NoError(t, os.WriteFile(path, []byte(html), 0644))

		got, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, html, got)
	})

	t.Run("decodes document declared as latin-1", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "latin1.html")
		// "Café" with é encoded as a single ISO-8859-1 byte.
		html := []byte("<html><head><meta charset=\"iso-8859-1\"></head><body>Caf\xe9</body></html>")
		require.NoError(t, os.WriteFile(path, html, 0644))

		got, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Contains(t, got, "Café")
	})

	t.Run("keeps undeclared utf-8 with late non-ascii text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "undeclared.html")
		html := "<html><body><!--" + strings.Repeat("x", 2048) + "--><div>Café Terrace</div></body></html>"
		require.NoError(t, os.WriteFile(path, []byte(html), 0644))

		got, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, html, got)
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nonexistent.html")

		_, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, mosaic.ENOTFOUND, mosaic.ErrorCode(err))
	})

	t.Run("returns EINVALID for wrong extension", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "paintings.txt")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		_, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, mosaic.EINVALID, mosaic.ErrorCode(err))
	})

	t.Run("returns EINVALID for directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "dir.html")
		require.NoError(t, os.Mkdir(path, 0755))

		_, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, mosaic.EINVALID, mosaic.ErrorCode(err))
	})

	t.Run("reads empty document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.html")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		got, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "paintings.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewDocumentReader().ReadDocument(ctx, path)

		require.ErrorIs(t, err, context.Canceled)
	})
}

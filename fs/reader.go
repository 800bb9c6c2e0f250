package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/mosaic"
	"golang.org/x/net/html/charset"
)

// Ensure DocumentReader implements mosaic.DocumentReader at compile time.
var _ mosaic.DocumentReader = (*DocumentReader)(nil)

// DocumentReader reads saved HTML documents from disk and decodes them to
// UTF-8 using the document's BOM or meta charset.
type DocumentReader struct{}

// NewDocumentReader creates a new DocumentReader.
func NewDocumentReader() *DocumentReader {
	return &DocumentReader{}
}

// ReadDocument returns the UTF-8 text of the document at path.
func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", mosaic.Errorf(mosaic.ENOTFOUND, "document %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat document: %w", err)
	}
	if info.IsDir() {
		return "", mosaic.Errorf(mosaic.EINVALID, "document path %q is a directory", path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	// Without a BOM or meta charset the sniffer guesses windows-1252 from
	// the first 1024 bytes only.
	enc, name, _ := charset.DetermineEncoding(data, "text/html")
	if name == "windows-1252" && utf8.Valid(data) {
		return string(data), nil
	}

	b, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode document as %s: %w", name, err)
	}
	return string(b), nil
}

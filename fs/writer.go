package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/mosaic"
)

// Ensure RecordWriter implements mosaic.RecordWriter at compile time.
var _ mosaic.RecordWriter = (*RecordWriter)(nil)

// RecordWriter writes records as an indented JSON array.
// Files are written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated output behind.
type RecordWriter struct{}

// NewRecordWriter creates a new RecordWriter.
func NewRecordWriter() *RecordWriter {
	return &RecordWriter{}
}

// WriteRecords writes records to path, creating parent directories.
func (w *RecordWriter) WriteRecords(ctx context.Context, path string, records []*mosaic.Record) error {
	if path == "" {
		return mosaic.Errorf(mosaic.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := FormatRecords(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	// Atomically replace any previous output
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// FormatRecords encodes records as an indented JSON array. A nil slice is
// encoded as an empty array. URLs are written without HTML escaping.
func FormatRecords(records []*mosaic.Record) ([]byte, error) {
	if records == nil {
		records = []*mosaic.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

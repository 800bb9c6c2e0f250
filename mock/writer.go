package mock

import (
	"context"

	"github.com/fwojciec/mosaic"
)

var _ mosaic.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of mosaic.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, path string, records []*mosaic.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, path string, records []*mosaic.Record) error {
	return w.WriteRecordsFn(ctx, path, records)
}

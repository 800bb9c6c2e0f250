package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mosaic"
)

// Ensure LoggingRecordWriter implements mosaic.RecordWriter.
var _ mosaic.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with debug logging.
type LoggingRecordWriter struct {
	next   mosaic.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next mosaic.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, path string, records []*mosaic.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"path", path,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, path, records)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mosaic"
)

// Ensure LoggingDocumentReader implements mosaic.DocumentReader.
var _ mosaic.DocumentReader = (*LoggingDocumentReader)(nil)

// LoggingDocumentReader wraps a DocumentReader with debug logging.
type LoggingDocumentReader struct {
	next   mosaic.DocumentReader
	logger *slog.Logger
}

// NewLoggingDocumentReader creates a new LoggingDocumentReader.
func NewLoggingDocumentReader(next mosaic.DocumentReader, logger *slog.Logger) *LoggingDocumentReader {
	return &LoggingDocumentReader{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped reader and logs the operation.
func (r *LoggingDocumentReader) ReadDocument(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read document",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadDocument(ctx, path)
}

package mock

import (
	"context"

	"github.com/fwojciec/mosaic"
)

var _ mosaic.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of mosaic.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(ctx context.Context, path string) (string, error)
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	return r.ReadDocumentFn(ctx, path)
}

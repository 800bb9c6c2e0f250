package mock

import (
	"github.com/fwojciec/mosaic"
)

var _ mosaic.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mosaic.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*mosaic.RawRecord, error)
}

func (e *Extractor) Extract(html string) ([]*mosaic.RawRecord, error) {
	return e.ExtractFn(html)
}

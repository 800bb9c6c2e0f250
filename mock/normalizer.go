package mock

import (
	"github.com/fwojciec/mosaic"
)

var _ mosaic.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of mosaic.Normalizer.
type Normalizer struct {
	NormalizeFn func(html string, records []*mosaic.RawRecord) []*mosaic.Record
}

func (n *Normalizer) Normalize(html string, records []*mosaic.RawRecord) []*mosaic.Record {
	return n.NormalizeFn(html, records)
}

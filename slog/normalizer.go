package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mosaic"
)

// Ensure LoggingNormalizer implements mosaic.Normalizer.
var _ mosaic.Normalizer = (*LoggingNormalizer)(nil)

// LoggingNormalizer wraps a Normalizer with debug logging.
type LoggingNormalizer struct {
	next   mosaic.Normalizer
	logger *slog.Logger
}

// NewLoggingNormalizer creates a new LoggingNormalizer.
func NewLoggingNormalizer(next mosaic.Normalizer, logger *slog.Logger) *LoggingNormalizer {
	return &LoggingNormalizer{next: next, logger: logger}
}

// Normalize delegates to the wrapped normalizer and logs how many records
// ended up without an image.
func (n *LoggingNormalizer) Normalize(html string, records []*mosaic.RawRecord) (normalized []*mosaic.Record) {
	defer func(begin time.Time) {
		var missing int
		for _, r := range normalized {
			if r.Image == nil {
				missing++
			}
		}
		n.logger.Info("normalize",
			"count", len(normalized),
			"without_image", missing,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return n.next.Normalize(html, records)
}

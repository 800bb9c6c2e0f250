// Package normalize turns raw result cards into clean records.
package normalize

import "github.com/fwojciec/mosaic"

var _ mosaic.Normalizer = (*Normalizer)(nil)

// Normalizer cleans text fields, absolutizes links and resolves images.
type Normalizer struct {
	origin string
}

// NewNormalizer creates a Normalizer that resolves path-only links against
// origin. An empty origin means mosaic.DefaultOrigin.
func NewNormalizer(origin string) *Normalizer {
	if origin == "" {
		origin = mosaic.DefaultOrigin
	}
	return &Normalizer{origin: origin}
}

// Normalize returns one Record per RawRecord in the same order. It never
// fails: fields that cannot be resolved are left empty or nil.
func (n *Normalizer) Normalize(html string, records []*mosaic.RawRecord) []*mosaic.Record {
	scripts := indexScripts(html)
	out := make([]*mosaic.Record, 0, len(records))
	for _, raw := range records {
		out = append(out, n.normalizeRecord(scripts, raw))
	}
	return out
}

func (n *Normalizer) normalizeRecord(scripts *scriptIndex, raw *mosaic.RawRecord) *mosaic.Record {
	extensions := []string{}
	if raw.Date != nil {
		if date := mosaic.CleanText(*raw.Date); date != "" {
			extensions = append(extensions, date)
		}
	}

	return &mosaic.Record{
		Title:      mosaic.CleanText(raw.Title),
		Extensions: extensions,
		Link:       mosaic.AbsoluteLink(n.origin, raw.Link),
		Image:      resolveImage(scripts, raw),
	}
}

// ResolveImage picks the image for a card. Script data recovered through
// the thumbnail id wins; a miss falls back to the preload URL, which may
// itself be nil.
func ResolveImage(html string, raw *mosaic.RawRecord) *string {
	return resolveImage(indexScripts(html), raw)
}

func resolveImage(scripts *scriptIndex, raw *mosaic.RawRecord) *string {
	if raw.ThumbnailID != nil && *raw.ThumbnailID != "" {
		if data, ok := scripts.recover(*raw.ThumbnailID); ok {
			return &data
		}
	}
	if raw.PreloadURL == nil {
		return nil
	}
	url := *raw.PreloadURL
	return &url
}

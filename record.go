package mosaic

import "context"

// RawRecord holds the fields read from a single result card before any
// cleanup. Optional fields are nil when the card does not carry them.
type RawRecord struct {
	// Title is the raw inner text of the title container.
	Title string

	// Date is the raw inner text of the date container.
	// Some cards in the mosaic have no date at all.
	Date *string

	// ThumbnailID is the id of the inline thumbnail image. It is the key
	// under which the page's scripts inject the full image data.
	ThumbnailID *string

	// PreloadURL is the lazy-load source of the thumbnail image.
	PreloadURL *string

	// Link is the card destination, absolute or path-only.
	Link string
}

// Record is a normalized result card.
// Field order matches the JSON key order of the output document.
type Record struct {
	Title      string   `json:"title"`
	Extensions []string `json:"extensions"`
	Link       string   `json:"link"`
	Image      *string  `json:"image"`
}

// Extractor locates result cards in an HTML document and reads their fields.
type Extractor interface {
	// Extract parses html and returns one RawRecord per result card in
	// document order. A document without result cards yields an empty slice.
	// Returns EMISSING if a card lacks its title or link.
	Extract(html string) ([]*RawRecord, error)
}

// Normalizer turns raw records into normalized records.
type Normalizer interface {
	// Normalize returns one Record per RawRecord, preserving order.
	// The html is the document the records were extracted from; it is
	// searched for image data that is only present in inline scripts.
	Normalize(html string, records []*RawRecord) []*Record
}

// DocumentReader reads saved HTML documents.
type DocumentReader interface {
	// ReadDocument returns the text of the document at path.
	// Returns EINVALID if path is not an .html file path and ENOTFOUND if
	// no document exists at path.
	ReadDocument(ctx context.Context, path string) (string, error)
}

// RecordWriter writes normalized records to a destination.
type RecordWriter interface {
	// WriteRecords writes records to path, creating parent directories.
	WriteRecords(ctx context.Context, path string, records []*Record) error
}

// Package goquery implements the mosaic Extractor on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mosaic"
)

var _ mosaic.Extractor = (*Extractor)(nil)

// Extractor reads result cards from a mosaic page using CSS selectors.
type Extractor struct {
	selectors mosaic.Selectors
}

// NewExtractor creates an Extractor using the default mosaic selectors.
func NewExtractor() *Extractor {
	return &Extractor{selectors: mosaic.DefaultSelectors()}
}

// NewExtractorWithSelectors creates an Extractor using custom selectors.
// Empty selectors fall back to their defaults.
func NewExtractorWithSelectors(selectors mosaic.Selectors) *Extractor {
	return &Extractor{selectors: selectors.WithDefaults()}
}

// Selectors returns the selectors the extractor uses.
func (e *Extractor) Selectors() mosaic.Selectors {
	return e.selectors
}

// Extract returns one RawRecord per result card in document order.
// A card without a title container or a link with an href fails the whole
// call with EMISSING; no partial result is returned.
func (e *Extractor) Extract(html string) ([]*mosaic.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mosaic.Errorf(mosaic.EINVALID, "failed to parse HTML: %v", err)
	}

	cards := doc.Find(e.selectors.Root)
	records := make([]*mosaic.RawRecord, 0, cards.Length())

	var extractErr error
	cards.EachWithBreak(func(i int, card *goquery.Selection) bool {
		record, err := e.extractCard(i, card)
		if err != nil {
			extractErr = err
			return false
		}
		records = append(records, record)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return records, nil
}

// extractCard reads the fields of a single card. All lookups are scoped to
// the card so that fields never leak in from a sibling.
func (e *Extractor) extractCard(index int, card *goquery.Selection) (*mosaic.RawRecord, error) {
	title := card.Find(e.selectors.Title).First()
	if title.Length() == 0 {
		return nil, mosaic.Errorf(mosaic.EMISSING, "result %d: missing title element %q", index, e.selectors.Title)
	}

	anchor := card.Find(e.selectors.Link).First()
	if anchor.Length() == 0 {
		return nil, mosaic.Errorf(mosaic.EMISSING, "result %d: missing link element %q", index, e.selectors.Link)
	}
	href, ok := anchor.Attr("href")
	if !ok {
		return nil, mosaic.Errorf(mosaic.EMISSING, "result %d: link element has no href", index)
	}

	record := &mosaic.RawRecord{
		Title: title.Text(),
		Link:  href,
	}

	if date := card.Find(e.selectors.Date).First(); date.Length() > 0 {
		text := date.Text()
		record.Date = &text
	}

	// The thumbnail carries either an id pointing into the page scripts,
	// a lazy-load URL, or both.
	if img := card.Find(e.selectors.Thumbnail).First(); img.Length() > 0 {
		record.ThumbnailID = attr(img, "id")
		record.PreloadURL = attr(img, "data-src")
	}

	return record, nil
}

// attr returns a pointer to the attribute value, or nil if the attribute is
// not set.
func attr(sel *goquery.Selection, name string) *string {
	v, ok := sel.Attr(name)
	if !ok {
		return nil
	}
	return &v
}

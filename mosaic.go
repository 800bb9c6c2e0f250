// Package mosaic extracts structured records from saved HTML snapshots of an
// image-search results page. A snapshot holds a "mosaic" of result cards,
// each carrying a title, an optional date, a thumbnail and a link. Some
// thumbnails are not present in the DOM at all and have to be recovered from
// inline script text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package mosaic

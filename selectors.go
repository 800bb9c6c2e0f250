package mosaic

// DefaultOrigin is prepended to path-only result links.
const DefaultOrigin = "https://www.google.com"

// Selectors are the CSS selectors describing the mosaic layout.
// Title, Date, Thumbnail and Link are evaluated inside each Root match.
type Selectors struct {
	Root      string `yaml:"root"`
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Thumbnail string `yaml:"thumbnail"`
	Link      string `yaml:"link"`
}

// DefaultSelectors returns the selectors for the image-search mosaic layout.
func DefaultSelectors() Selectors {
	return Selectors{
		Root:      "div.iELo6",
		Title:     "div.pgNMRc",
		Date:      "div.cxzHyb",
		Thumbnail: "img.taFZJe",
		Link:      "a",
	}
}

// WithDefaults returns a copy of s where every empty selector is replaced
// by its default.
func (s Selectors) WithDefaults() Selectors {
	d := DefaultSelectors()
	if s.Root == "" {
		s.Root = d.Root
	}
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.Date == "" {
		s.Date = d.Date
	}
	if s.Thumbnail == "" {
		s.Thumbnail = d.Thumbnail
	}
	if s.Link == "" {
		s.Link = d.Link
	}
	return s
}

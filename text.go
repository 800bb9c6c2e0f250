package mosaic

import "strings"

// CleanText collapses every run of whitespace to a single space and trims
// both ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// AbsoluteLink returns link unchanged if it is already an absolute http(s)
// URL. Otherwise the link is treated as a path on origin.
func AbsoluteLink(origin, link string) string {
	if strings.HasPrefix(link, "https://") || strings.HasPrefix(link, "http://") {
		return link
	}
	origin = strings.TrimSuffix(origin, "/")
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return origin + link
}

package normalize

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// The page injects full thumbnails from inline scripts, keyed by the ids of
// the <img> elements they replace:
//
//	(function(){var s='data:image/...';var ii=['dimg_1'];_setImagesSrc(ii,s);})();
//
// Depending on load order the key array appears either before or after the
// data literal, so both layouts are searched.
var (
	// ii=['a'] or ii=['a','b']; group 1 is the quoted id list.
	keyArray = regexp.MustCompile(`ii=\[((?:'[^']*',)*'[^']*')\]`)

	// ... 'data:image/...'; right after a key array.
	trailingLiteral = regexp.MustCompile(`^[^']*?'(data:image[^']*)';`)

	// var s='data:image/...' somewhere before a key array.
	leadingLiteral = regexp.MustCompile(`var s='(data:image[^']*)'`)
)

// statementEnds mark the end of the script statement a key array belongs
// to. A literal on the far side of one belongs to another card.
var statementEnds = []string{"_setImagesSrc(", "})();", "</script>"}

// scriptIndex holds the key arrays of one document so that many keys can
// be looked up without rescanning the whole page per key.
type scriptIndex struct {
	html   string
	arrays []keyArrayLoc
}

type keyArrayLoc struct {
	start, end int
	ids        []string
}

func indexScripts(html string) *scriptIndex {
	idx := &scriptIndex{html: html}
	for _, loc := range keyArray.FindAllStringSubmatchIndex(html, -1) {
		// Strip the outer quotes, then split on the separators between ids.
		list := html[loc[2]+1 : loc[3]-1]
		idx.arrays = append(idx.arrays, keyArrayLoc{
			start: loc[0],
			end:   loc[1],
			ids:   strings.Split(list, "','"),
		})
	}
	return idx
}

// RecoverImage searches html for the image data URI injected for key.
// It reports false when neither script layout mentions the key.
func RecoverImage(html, key string) (string, bool) {
	return indexScripts(html).recover(key)
}

func (idx *scriptIndex) recover(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	var owned []keyArrayLoc
	for _, arr := range idx.arrays {
		if slices.Contains(arr.ids, key) {
			owned = append(owned, arr)
		}
	}

	for _, arr := range owned {
		if data, ok := idx.literalAfter(arr); ok {
			return unescapeHex(data), true
		}
	}
	for _, arr := range owned {
		if data, ok := idx.literalBefore(arr); ok {
			return unescapeHex(data), true
		}
	}
	return "", false
}

// literalAfter returns the data literal that follows arr within the same
// statement.
func (idx *scriptIndex) literalAfter(arr keyArrayLoc) (string, bool) {
	rest := idx.html[arr.end:]
	m := trailingLiteral.FindStringSubmatchIndex(rest)
	if m == nil {
		return "", false
	}
	if crossesStatement(rest[:m[2]]) {
		return "", false
	}
	return rest[m[2]:m[3]], true
}

// literalBefore returns the data literal closest to arr on the same line,
// provided no statement ends between them.
func (idx *scriptIndex) literalBefore(arr keyArrayLoc) (string, bool) {
	lineStart := strings.LastIndexByte(idx.html[:arr.start], '\n') + 1
	line := idx.html[lineStart:arr.start]

	locs := leadingLiteral.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return "", false
	}
	last := locs[len(locs)-1]
	if crossesStatement(line[last[1]:]) {
		return "", false
	}
	return line[last[2]:last[3]], true
}

func crossesStatement(gap string) bool {
	for _, end := range statementEnds {
		if strings.Contains(gap, end) {
			return true
		}
	}
	return false
}

// unescapeHex decodes JavaScript \xHH escapes. Inline scripts encode the
// base64 padding as \x3d.
func unescapeHex(s string) string {
	if !strings.Contains(s, `\x`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

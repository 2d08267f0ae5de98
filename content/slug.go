// Package content derives display-ready values from raw content records:
// slugs, heading outlines, reading time, cover and category fallbacks.
// Everything here is a pure transform over caller-supplied values.
package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugStripPattern = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	hyphenRun        = regexp.MustCompile(`-+`)

	// NFD decomposition followed by combining-mark removal strips accents
	// ("Notícias" -> "Noticias") without touching base letters.
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
)

// Slugify turns a display string into a URL-safe slug: lowercase ASCII,
// hyphen-separated, no accents. Total function; input with no usable
// characters yields "".
func Slugify(text string) string {
	s := strings.ToLower(text)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	s = strings.NewReplacer("/", "-", "\\", "-").Replace(s)
	s = slugStripPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

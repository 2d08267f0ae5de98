package content

import (
	"fmt"
	"strconv"
	"strings"
)

// Heading is one entry of a post's table of contents, extracted from its
// body HTML. ID is the Slugify form of Text; two headings with identical
// text share an id, and the anchor then resolves to the first occurrence.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// ExtractHeadings scans body HTML for h2/h3 tags in document order. h1 is
// reserved for the post title and ignored. Headings wrapping nested markup
// or missing their closing tag simply don't match; malformed HTML never
// fails, it just yields fewer entries.
func ExtractHeadings(html string) []Heading {
	matches := headingPattern.FindAllStringSubmatch(html, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		text := strings.TrimSpace(innerTagPattern.ReplaceAllString(m[3], ""))
		headings = append(headings, Heading{
			ID:    Slugify(text),
			Text:  text,
			Level: level,
		})
	}
	return headings
}

// InjectHeadingIDs returns a copy of the body HTML with an id attribute
// added to every h2/h3 lacking one, using the same slug values as
// ExtractHeadings so ToC anchors resolve. Caller-supplied ids win.
func InjectHeadingIDs(html string) string {
	return headingPattern.ReplaceAllStringFunc(html, func(tag string) string {
		m := headingPattern.FindStringSubmatch(tag)
		level, attrs, inner := m[1], m[2], m[3]
		if idAttrPattern.MatchString(attrs) {
			return tag
		}
		id := Slugify(strings.TrimSpace(innerTagPattern.ReplaceAllString(inner, "")))
		return fmt.Sprintf(`<h%s%s id="%s">%s</h%s>`, level, attrs, id, inner, level)
	})
}

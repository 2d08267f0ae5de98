package content

import (
	"regexp"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

var (
	headingPattern  = regexp.MustCompile(`(?i)<h([23])([^>]*)>([^<]+)</h[23]>`)
	innerTagPattern = regexp.MustCompile(`<[^>]+>`)
	idAttrPattern   = regexp.MustCompile(`(?i)id\s*=`)
)

// wordsPerMinute is the fixed reading rate of the estimate.
const wordsPerMinute = 200

// ReadingTime estimates reading minutes for body HTML: markup stripped,
// whitespace-separated words counted, rounded up, never below 1.
func ReadingTime(htmlStr string) int {
	text := innerTagPattern.ReplaceAllString(htmlStr, " ")
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// PlainText walks the parsed document and concatenates its text nodes,
// space separated. Returns "" for unparseable input.
func PlainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)
	return b.String()
}

// ExcerptFallback derives a short plain-text excerpt from body HTML for
// posts saved without one. Readability isolates the main content; the raw
// text walk is the fallback when it finds nothing. Truncated to max runes.
func ExcerptFallback(htmlStr string, max int) string {
	text := ""
	if doc, err := html.Parse(strings.NewReader(htmlStr)); err == nil {
		if article, err := readability.FromDocument(doc, nil); err == nil {
			text = strings.Join(strings.Fields(article.TextContent), " ")
		}
	}
	if text == "" {
		text = PlainText(htmlStr)
	}

	if max <= 0 {
		return text
	}
	rs := []rune(text)
	if len(rs) <= max {
		return text
	}
	return strings.TrimSpace(string(rs[:max])) + "…"
}

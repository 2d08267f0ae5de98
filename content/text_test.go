package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"game-press/content"
)

func TestReadingTime(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want int
	}{
		{name: "empty body", html: "", want: 1},
		{name: "only markup", html: "<p></p><br/>", want: 1},
		{name: "short paragraph", html: "<p>um dois três quatro</p>", want: 1},
		{name: "exactly one minute", html: words(200), want: 1},
		{name: "two minutes", html: words(400), want: 2},
		{name: "rounds up", html: words(401), want: 3},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, content.ReadingTime(testCase.html))
		})
	}
}

func TestReadingTimeIgnoresMarkup(t *testing.T) {
	plain := words(250)
	wrapped := "<div><p>" + strings.ReplaceAll(plain, " ", "</p> <p>") + "</p></div>"
	assert.Equal(t, content.ReadingTime(plain), content.ReadingTime(wrapped))
}

func TestPlainText(t *testing.T) {
	html := `<article><h2>Lançamentos</h2><p>O console <strong>chega</strong> em março.</p></article>`

	got := content.PlainText(html)

	assert.Equal(t, "Lançamentos O console chega em março.", got)
}

func TestExcerptFallbackTruncates(t *testing.T) {
	html := "<p>" + words(60) + "</p>"

	got := content.ExcerptFallback(html, 40)

	rs := []rune(got)
	if len(rs) > 41 {
		t.Fatalf("excerpt too long: %d runes", len(rs))
	}
	assert.True(t, strings.HasSuffix(got, "…"), "truncated excerpt should end with ellipsis, got %q", got)
}

func TestExcerptFallbackShortBody(t *testing.T) {
	got := content.ExcerptFallback("<p>curto e direto</p>", 160)
	assert.Equal(t, "curto e direto", got)
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "palavra"
	}
	return strings.Join(parts, " ")
}

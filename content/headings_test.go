package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"game-press/content"
)

func TestExtractHeadings(t *testing.T) {
	html := `<h1>Título do post</h1><p>intro</p><h2>Intro</h2><p>...</p><h3>Detail</h3>`

	headings := content.ExtractHeadings(html)

	assert.Equal(t, []content.Heading{
		{ID: "intro", Text: "Intro", Level: 2},
		{ID: "detail", Text: "Detail", Level: 3},
	}, headings)
}

func TestExtractHeadingsSkipsNestedMarkup(t *testing.T) {
	// Headings wrapping child tags don't match the extraction pattern.
	html := `<h2><strong>Bold</strong></h2><h2>Plain</h2>`

	headings := content.ExtractHeadings(html)

	assert.Equal(t, []content.Heading{{ID: "plain", Text: "Plain", Level: 2}}, headings)
}

func TestExtractHeadingsMalformedHTML(t *testing.T) {
	// An unclosed heading degrades to "not extracted", never an error.
	html := `<h2>Sem fechamento<p>texto</p><h3>Ok</h3>`

	headings := content.ExtractHeadings(html)

	assert.Equal(t, []content.Heading{{ID: "ok", Text: "Ok", Level: 3}}, headings)
}

func TestExtractHeadingsKeepsDuplicateIDs(t *testing.T) {
	html := `<h2>Resumo</h2><h2>Resumo</h2>`

	headings := content.ExtractHeadings(html)

	if len(headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(headings))
	}
	// Duplicate text keeps duplicate ids; anchors resolve to the first.
	assert.Equal(t, headings[0].ID, headings[1].ID)
}

func TestInjectHeadingIDs(t *testing.T) {
	html := `<h2>Intro</h2><h3>Detail</h3>`

	got := content.InjectHeadingIDs(html)

	assert.Equal(t, `<h2 id="intro">Intro</h2><h3 id="detail">Detail</h3>`, got)
}

func TestInjectHeadingIDsKeepsExisting(t *testing.T) {
	html := `<h2 id="custom">Intro</h2><h3 class="sub">Detail</h3>`

	got := content.InjectHeadingIDs(html)

	assert.Equal(t, `<h2 id="custom">Intro</h2><h3 class="sub" id="detail">Detail</h3>`, got)
}

func TestInjectHeadingIDsMatchesExtraction(t *testing.T) {
	html := `<h2>Guia de Compra</h2><p>x</p><h3>Preço e Promoções</h3>`

	injected := content.InjectHeadingIDs(html)
	for _, h := range content.ExtractHeadings(html) {
		assert.Contains(t, injected, `id="`+h.ID+`"`)
	}
}

package services

import (
	"context"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"game-press/content"
	"game-press/contentapi"
	"game-press/models"
)

// excerptMaxRunes bounds the derived excerpt shown on cards and feeds.
const excerptMaxRunes = 160

// relatedLimit is how many related posts the article page shows.
const relatedLimit = 3

// PostCard is the summary view of a post used by listings, the home page
// and the related-posts rail.
type PostCard struct {
	Title          string
	Slug           string
	Excerpt        string
	CoverURL       string
	CategoryName   string
	CategorySlug   string
	AuthorName     string
	PublishedAt    string
	ReadingMinutes int
}

// PostView is the full article view model.
type PostView struct {
	PostCard
	Body    template.HTML
	TOC     []content.Heading
	Tags    []models.Tag
	Views   int64
	Related []PostCard
}

// PostViewService maps API post records into render-ready view models:
// sanitized body, injected heading anchors, table of contents, reading time,
// cover and category fallbacks, pt-BR dates.
type PostViewService struct {
	client *contentapi.Client
	policy *bluemonday.Policy
}

func NewPostViewService(client *contentapi.Client) *PostViewService {
	return &PostViewService{
		client: client,
		policy: bluemonday.UGCPolicy().AllowAttrs("id").OnElements("h2", "h3"),
	}
}

// Card builds the summary view of one post.
func (s *PostViewService) Card(p models.Post) PostCard {
	excerpt := p.Excerpt
	if excerpt == "" {
		excerpt = content.ExcerptFallback(p.Content, excerptMaxRunes)
	}

	author := ""
	if p.Author != nil {
		author = p.Author.Name
	}

	return PostCard{
		Title:          p.Title,
		Slug:           p.Slug,
		Excerpt:        excerpt,
		CoverURL:       content.CoverImageURL(p),
		CategoryName:   content.CategoryName(p),
		CategorySlug:   content.CategorySlug(p),
		AuthorName:     author,
		PublishedAt:    content.FormatDate(p.CreatedAt),
		ReadingMinutes: content.ReadingTime(p.Content),
	}
}

// Cards maps a post list into summary views, preserving order.
func (s *PostViewService) Cards(posts []models.Post) []PostCard {
	cards := make([]PostCard, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, s.Card(p))
	}
	return cards
}

// View builds the article page view: body sanitized and anchored, table of
// contents extracted from the same heading set, related posts from the same
// category.
func (s *PostViewService) View(ctx context.Context, p models.Post) PostView {
	body := s.policy.Sanitize(content.InjectHeadingIDs(p.Content))

	related := s.client.RelatedPosts(ctx, p.Slug, content.CategorySlug(p), relatedLimit)

	return PostView{
		PostCard: s.Card(p),
		Body:     template.HTML(body),
		TOC:      content.ExtractHeadings(p.Content),
		Tags:     p.Tags,
		Views:    p.Views,
		Related:  s.Cards(related),
	}
}

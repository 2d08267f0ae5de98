package content

import "game-press/models"

// DefaultCoverImage is the placeholder shown for posts without a thumbnail.
const DefaultCoverImage = "https://placehold.co/800x450/1a1a2e/6366f1?text=Blog"

// FallbackCategoryName labels posts whose category reference is absent.
const FallbackCategoryName = "Sem categoria"

// CoverImageURL returns the post's thumbnail, or the placeholder when the
// record has none.
func CoverImageURL(p models.Post) string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	return DefaultCoverImage
}

// CategoryName returns the linked category's display name, or the fallback
// label for uncategorized posts.
func CategoryName(p models.Post) string {
	if p.Category != nil && p.Category.Name != "" {
		return p.Category.Name
	}
	return FallbackCategoryName
}

// CategorySlug returns the linked category's slug, deriving one from the
// category label when the reference is absent.
func CategorySlug(p models.Post) string {
	if p.Category != nil && p.Category.Slug != "" {
		return p.Category.Slug
	}
	return Slugify(CategoryName(p))
}

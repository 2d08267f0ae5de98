package contentapi

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"game-press/models"
)

// DefaultPageLimit is the page size the content API assumes when none is
// requested.
const DefaultPageLimit = 10

// ListPostsParams are the filters of the posts list endpoint. Zero values
// are left out of the query string.
type ListPostsParams struct {
	Page     int
	Limit    int
	Category string
	Tag      string
	Search   string
	Status   models.PostStatus
}

func (p ListPostsParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Tag != "" {
		q.Set("tag", p.Tag)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	return q
}

// ListPosts lists posts with pagination and filters. Pass a token to include
// drafts in the admin panel. Degrading read: any failure yields an empty
// page with the requested (or default) limit.
func (c *Client) ListPosts(ctx context.Context, params ListPostsParams, token string) models.Pagination[models.Post] {
	var out models.Pagination[models.Post]
	if err := c.get(ctx, "/api/posts", params.query(), token, &out); err != nil {
		logDegraded("posts list", err)
		limit := params.Limit
		if limit <= 0 {
			limit = DefaultPageLimit
		}
		return models.EmptyPage[models.Post](limit)
	}
	if out.Data == nil {
		out.Data = []models.Post{}
	}
	return out
}

// FeaturedPost returns the post flagged for the hero slot, or nil when none
// exists or the API is unreachable.
func (c *Client) FeaturedPost(ctx context.Context) *models.Post {
	var out struct {
		Data *models.Post `json:"data"`
	}
	if err := c.get(ctx, "/api/posts/featured", nil, "", &out); err != nil {
		logDegraded("featured post", err)
		return nil
	}
	return out.Data
}

// RecentPosts returns the latest published posts. Degrades to empty.
func (c *Client) RecentPosts(ctx context.Context) []models.Post {
	return c.postCollection(ctx, "/api/posts/recent", "recent posts")
}

// PopularPosts returns the most viewed posts. Degrades to empty.
func (c *Client) PopularPosts(ctx context.Context) []models.Post {
	return c.postCollection(ctx, "/api/posts/popular", "popular posts")
}

func (c *Client) postCollection(ctx context.Context, relPath, what string) []models.Post {
	var out struct {
		Data []models.Post `json:"data"`
	}
	if err := c.get(ctx, relPath, nil, "", &out); err != nil {
		logDegraded(what, err)
		return []models.Post{}
	}
	if out.Data == nil {
		return []models.Post{}
	}
	return out.Data
}

// GetPostBySlug returns a single published post, or nil when it does not
// exist or the API is unreachable.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) *models.Post {
	var out struct {
		Data *models.Post `json:"data"`
	}
	if err := c.get(ctx, path.Join("/api/posts", slug), nil, "", &out); err != nil {
		logDegraded("post by slug", err)
		return nil
	}
	return out.Data
}

// RelatedPosts lists up to limit posts from the same category, excluding the
// post being read. The category fetch over-requests by 5 to tolerate the
// exclusion and unpublished entries. Degrades to empty.
func (c *Client) RelatedPosts(ctx context.Context, excludeSlug, categorySlug string, limit int) []models.Post {
	if limit <= 0 {
		limit = 3
	}
	page := c.CategoryPosts(ctx, categorySlug, CategoryPostsParams{Limit: limit + 5})

	related := make([]models.Post, 0, limit)
	for _, p := range page.Data {
		if p.Slug == excludeSlug {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related
}

// CreatePost creates a post. Write: failures propagate.
func (c *Client) CreatePost(ctx context.Context, params models.CreatePostParams, token string) (*models.Post, error) {
	return c.postWrite(ctx, http.MethodPost, "/api/posts", params, token)
}

// UpdatePost updates a post by id. Write: failures propagate.
func (c *Client) UpdatePost(ctx context.Context, id int, params models.UpdatePostParams, token string) (*models.Post, error) {
	return c.postWrite(ctx, http.MethodPut, path.Join("/api/posts", strconv.Itoa(id)), params, token)
}

// PublishPost flips the publication state of a post. Write: failures
// propagate.
func (c *Client) PublishPost(ctx context.Context, id int, publish bool, token string) (*models.Post, error) {
	body := struct {
		Publish bool `json:"publish"`
	}{Publish: publish}
	return c.postWrite(ctx, http.MethodPatch, path.Join("/api/posts", strconv.Itoa(id), "publish"), body, token)
}

// DeletePost removes a post. Write: failures propagate.
func (c *Client) DeletePost(ctx context.Context, id int, token string) error {
	return c.do(ctx, http.MethodDelete, path.Join("/api/posts", strconv.Itoa(id)), nil, nil, token, nil)
}

func (c *Client) postWrite(ctx context.Context, method, relPath string, body any, token string) (*models.Post, error) {
	var out struct {
		Data *models.Post `json:"data"`
	}
	if err := c.do(ctx, method, relPath, nil, body, token, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, &APIError{Message: "invalid API response: post missing"}
	}
	return out.Data, nil
}

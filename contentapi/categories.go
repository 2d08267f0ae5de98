package contentapi

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"game-press/models"
)

// ListCategories returns all categories. Degrades to empty.
func (c *Client) ListCategories(ctx context.Context) []models.Category {
	var out struct {
		Data []models.Category `json:"data"`
	}
	if err := c.get(ctx, "/api/categories", nil, "", &out); err != nil {
		logDegraded("categories list", err)
		return []models.Category{}
	}
	if out.Data == nil {
		return []models.Category{}
	}
	return out.Data
}

// CategoryPostsParams paginate a category's post listing.
type CategoryPostsParams struct {
	Page  int
	Limit int
}

// CategoryPosts lists the posts of one category. Legacy deployments answer
// with a bare {"data": [...]} without meta; the pagination envelope absorbs
// both shapes. Degrading read.
func (c *Client) CategoryPosts(ctx context.Context, slug string, params CategoryPostsParams) models.Pagination[models.Post] {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	var out models.Pagination[models.Post]
	if err := c.get(ctx, path.Join("/api/categories", slug, "posts"), q, "", &out); err != nil {
		logDegraded("category posts", err)
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

// CreateCategory creates a category. Write: failures propagate.
func (c *Client) CreateCategory(ctx context.Context, params models.CreateCategoryParams, token string) (*models.Category, error) {
	return c.categoryWrite(ctx, http.MethodPost, "/api/categories", params, token)
}

// UpdateCategory updates a category by id. Write: failures propagate.
func (c *Client) UpdateCategory(ctx context.Context, id int, params models.UpdateCategoryParams, token string) (*models.Category, error) {
	return c.categoryWrite(ctx, http.MethodPut, path.Join("/api/categories", strconv.Itoa(id)), params, token)
}

// DeleteCategory removes a category. Write: failures propagate.
func (c *Client) DeleteCategory(ctx context.Context, id int, token string) error {
	return c.do(ctx, http.MethodDelete, path.Join("/api/categories", strconv.Itoa(id)), nil, nil, token, nil)
}

func (c *Client) categoryWrite(ctx context.Context, method, relPath string, body any, token string) (*models.Category, error) {
	var out struct {
		Data *models.Category `json:"data"`
	}
	if err := c.do(ctx, method, relPath, nil, body, token, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, &APIError{Message: "invalid API response: category missing"}
	}
	return out.Data, nil
}

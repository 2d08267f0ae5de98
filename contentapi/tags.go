package contentapi

import (
	"context"
	"net/http"
	"path"
	"strconv"

	"game-press/models"
)

// ListTags returns all tags. Degrades to empty.
func (c *Client) ListTags(ctx context.Context) []models.Tag {
	var out struct {
		Data []models.Tag `json:"data"`
	}
	if err := c.get(ctx, "/api/tags", nil, "", &out); err != nil {
		logDegraded("tags list", err)
		return []models.Tag{}
	}
	if out.Data == nil {
		return []models.Tag{}
	}
	return out.Data
}

// CreateTag creates a tag. Write: failures propagate.
func (c *Client) CreateTag(ctx context.Context, params models.CreateTagParams, token string) (*models.Tag, error) {
	return c.tagWrite(ctx, http.MethodPost, "/api/tags", params, token)
}

// UpdateTag updates a tag by id. Write: failures propagate.
func (c *Client) UpdateTag(ctx context.Context, id int, params models.UpdateTagParams, token string) (*models.Tag, error) {
	return c.tagWrite(ctx, http.MethodPut, path.Join("/api/tags", strconv.Itoa(id)), params, token)
}

// DeleteTag removes a tag. Write: failures propagate.
func (c *Client) DeleteTag(ctx context.Context, id int, token string) error {
	return c.do(ctx, http.MethodDelete, path.Join("/api/tags", strconv.Itoa(id)), nil, nil, token, nil)
}

func (c *Client) tagWrite(ctx context.Context, method, relPath string, body any, token string) (*models.Tag, error) {
	var out struct {
		Data *models.Tag `json:"data"`
	}
	if err := c.do(ctx, method, relPath, nil, body, token, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, &APIError{Message: "invalid API response: tag missing"}
	}
	return out.Data, nil
}

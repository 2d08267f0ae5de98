package contentapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strconv"

	"game-press/models"
)

// ListUsers lists all editorial accounts. Authenticated read: failures
// propagate. Older API versions answer with a bare array instead of the
// {"data": [...]} envelope; both are accepted.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/users", nil, token, &raw); err != nil {
		return nil, err
	}
	users := listFromRaw[models.User](raw)
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// GetUser returns one user by id. Authenticated read: failures propagate,
// except a 404 which comes back as ErrNotFound.
func (c *Client) GetUser(ctx context.Context, id int, token string) (*models.User, error) {
	var out struct {
		Data *models.User `json:"data"`
	}
	if err := c.get(ctx, path.Join("/api/users", strconv.Itoa(id)), nil, token, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if out.Data == nil {
		return nil, &APIError{Message: "invalid API response: user missing"}
	}
	return out.Data, nil
}

// Me returns the account owning the token. The response must carry a user
// field; a decode fallback to an empty object surfaces here as an explicit
// failure instead of a zero user.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.get(ctx, "/api/auth/me", nil, token, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, &APIError{Message: "invalid API response: user missing"}
	}
	return out.User, nil
}

// CreateUser creates a user. Write: failures propagate.
func (c *Client) CreateUser(ctx context.Context, params models.CreateUserParams, token string) (*models.User, error) {
	return c.userWrite(ctx, http.MethodPost, "/api/users", params, token)
}

// UpdateUser updates a user by id. Write: failures propagate.
func (c *Client) UpdateUser(ctx context.Context, id int, params models.UpdateUserParams, token string) (*models.User, error) {
	return c.userWrite(ctx, http.MethodPut, path.Join("/api/users", strconv.Itoa(id)), params, token)
}

// DeleteUser removes a user. Write: failures propagate.
func (c *Client) DeleteUser(ctx context.Context, id int, token string) error {
	return c.do(ctx, http.MethodDelete, path.Join("/api/users", strconv.Itoa(id)), nil, nil, token, nil)
}

func (c *Client) userWrite(ctx context.Context, method, relPath string, body any, token string) (*models.User, error) {
	var out struct {
		Data *models.User `json:"data"`
	}
	if err := c.do(ctx, method, relPath, nil, body, token, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, &APIError{Message: "invalid API response: user missing"}
	}
	return out.Data, nil
}

package contentapi

import (
	"context"
	"net/http"
	"strings"

	"game-press/models"
)

// AuthSession is the normalized result of a successful login.
type AuthSession struct {
	Token string
	User  models.User
}

// Login exchanges credentials for a bearer token. Write-like: failures
// (wrong credentials, server errors) always propagate.
//
// The API answers either {"token": ..., "user": {...}} or the same pair
// nested under a "data" envelope; both are normalized here. When the server
// omits the user object, a minimal one is synthesized from the email's
// local part so the admin panel still has a display name.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
		Data  *struct {
			Token string       `json:"token"`
			User  *models.User `json:"user"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, "", &out); err != nil {
		return nil, err
	}

	token := out.Token
	user := out.User
	if out.Data != nil {
		if token == "" {
			token = out.Data.Token
		}
		if user == nil {
			user = out.Data.User
		}
	}
	if token == "" {
		return nil, &APIError{Message: "invalid API response: token missing"}
	}
	if user == nil {
		name, _, _ := strings.Cut(email, "@")
		user = &models.User{Name: name, Email: email}
	}

	return &AuthSession{Token: token, User: *user}, nil
}

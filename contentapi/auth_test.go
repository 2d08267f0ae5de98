package contentapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFlatResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "ana@example.com", body.Email)
		assert.Equal(t, "s3cret", body.Password)

		w.Write([]byte(`{"token":"tok-abc","user":{"id":1,"name":"Ana","email":"ana@example.com","role":"admin"}}`))
	}))

	session, err := c.Login(context.Background(), "ana@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", session.Token)
	assert.Equal(t, "Ana", session.User.Name)
}

func TestLoginEnvelopedResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"token":"tok-env","user":{"id":2,"name":"Bruno"}}}`))
	}))

	session, err := c.Login(context.Background(), "bruno@example.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, "tok-env", session.Token)
	assert.Equal(t, "Bruno", session.User.Name)
}

func TestLoginSynthesizesUserFromEmail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-min"}`))
	}))

	session, err := c.Login(context.Background(), "carla@example.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, "carla", session.User.Name)
	assert.Equal(t, "carla@example.com", session.User.Email)
}

func TestLoginRequiresToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":1}}`))
	}))

	_, err := c.Login(context.Background(), "ana@example.com", "pw")

	require.EqualError(t, err, "invalid API response: token missing")
}

func TestLoginPropagatesBadCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))

	_, err := c.Login(context.Background(), "ana@example.com", "errada")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

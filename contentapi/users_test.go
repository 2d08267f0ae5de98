package contentapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersBareArray(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":1,"name":"Ana"},{"id":2,"name":"Bruno"}]`))
	}))

	users, err := c.ListUsers(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bruno", users[1].Name)
}

func TestListUsersEnveloped(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"name":"Ana"}]}`))
	}))

	users, err := c.ListUsers(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestListUsersPropagatesFailure(t *testing.T) {
	_, err := unreachableClient(t).ListUsers(context.Background(), "tok")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
}

func TestGetUser(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/5", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"id":5,"name":"Ana","role":"editor"}}`))
	}))

	user, err := c.GetUser(context.Background(), 5, "tok")

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestGetUserNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user not found"}`))
	}))

	_, err := c.GetUser(context.Background(), 999, "tok")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestMe(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		w.Write([]byte(`{"user":{"id":5,"name":"Ana","role":"editor"}}`))
	}))

	user, err := c.Me(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
}

func TestMeRequiresUserField(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not even json"))
	}))

	_, err := c.Me(context.Background(), "tok")

	require.EqualError(t, err, "invalid API response: user missing")
}

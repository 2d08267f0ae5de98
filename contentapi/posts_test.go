package contentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-press/models"
)

func TestListPosts(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "consoles", r.URL.Query().Get("category"))
		json.NewEncoder(w).Encode(models.Pagination[models.Post]{
			Data: []models.Post{{ID: 1, Title: "Primeiro"}},
			Meta: models.Meta{Total: 11, Page: 2, Limit: 5, TotalPages: 3},
		})
	}))

	page := c.ListPosts(context.Background(), ListPostsParams{Page: 2, Limit: 5, Category: "consoles"}, "")

	require.Len(t, page.Data, 1)
	assert.Equal(t, "Primeiro", page.Data[0].Title)
	assert.Equal(t, 3, page.Meta.TotalPages)
}

func TestListPostsDegradesToEmptyPage(t *testing.T) {
	c := unreachableClient(t)

	page := c.ListPosts(context.Background(), ListPostsParams{Limit: 6}, "")

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 6, page.Meta.Limit)
	assert.Equal(t, 1, page.Meta.Page)
	assert.Equal(t, 0, page.Meta.Total)
}

func TestListPostsDegradeUsesDefaultLimit(t *testing.T) {
	c := unreachableClient(t)

	page := c.ListPosts(context.Background(), ListPostsParams{}, "")

	assert.Equal(t, DefaultPageLimit, page.Meta.Limit)
}

func TestFeaturedPost(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/featured", r.URL.Path)
		w.Write([]byte(`{"data":{"id":7,"title":"Destaque","slug":"destaque"}}`))
	}))

	post := c.FeaturedPost(context.Background())

	require.NotNil(t, post)
	assert.Equal(t, "destaque", post.Slug)
}

func TestFeaturedPostDegradesToNil(t *testing.T) {
	assert.Nil(t, unreachableClient(t).FeaturedPost(context.Background()))
}

func TestGetPostBySlugMissing(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"post not found"}`))
	}))

	assert.Nil(t, c.GetPostBySlug(context.Background(), "nao-existe"))
}

func TestRelatedPostsExcludesCurrent(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories/consoles/posts", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("limit"))

		posts := make([]models.Post, 0, 8)
		for i := 1; i <= 8; i++ {
			posts = append(posts, models.Post{ID: i, Slug: fmt.Sprintf("post-%d", i)})
		}
		json.NewEncoder(w).Encode(models.Pagination[models.Post]{Data: posts})
	}))

	related := c.RelatedPosts(context.Background(), "post-2", "consoles", 3)

	require.Len(t, related, 3)
	for _, p := range related {
		assert.NotEqual(t, "post-2", p.Slug)
	}
}

func TestRelatedPostsDegradesToEmpty(t *testing.T) {
	related := unreachableClient(t).RelatedPosts(context.Background(), "x", "consoles", 3)
	assert.Empty(t, related)
}

func TestCreatePost(t *testing.T) {
	title := "Review: novo console"
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":42,"title":"Review: novo console","slug":"review-novo-console"}}`))
	}))

	post, err := c.CreatePost(context.Background(), models.CreatePostParams{Title: title, Content: "<p>corpo</p>"}, "tok")

	require.NoError(t, err)
	assert.Equal(t, 42, post.ID)
}

func TestCreatePostPropagatesValidationError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"validation failed"}`))
	}))

	_, err := c.CreatePost(context.Background(), models.CreatePostParams{}, "tok")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "validation failed", apiErr.Message)
}

func TestCreatePostRejectsEmptyResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := c.CreatePost(context.Background(), models.CreatePostParams{Title: "x"}, "tok")

	require.EqualError(t, err, "invalid API response: post missing")
}

func TestPublishPost(t *testing.T) {
	var gotBody struct {
		Publish bool `json:"publish"`
	}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/posts/9/publish", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data":{"id":9,"status":"published"}}`))
	}))

	post, err := c.PublishPost(context.Background(), 9, true, "tok")

	require.NoError(t, err)
	assert.True(t, gotBody.Publish)
	assert.Equal(t, models.StatusPublished, post.Status)
}

func TestDeletePost(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/posts/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeletePost(context.Background(), 3, "tok"))
}

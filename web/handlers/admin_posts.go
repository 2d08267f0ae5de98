package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"game-press/content"
	"game-press/contentapi"
	"game-press/models"
	"game-press/web/middleware"
)

// DashboardHandler renders the admin landing page with content counts and
// the latest posts, drafts included.
func DashboardHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		token := middleware.Token(c)

		posts := client.ListPosts(ctx, contentapi.ListPostsParams{Limit: 5}, token)

		c.HTML(http.StatusOK, "painel_dashboard.tmpl", gin.H{
			"Site":       site(),
			"UserName":   c.GetString(middleware.CtxUserName),
			"Posts":      posts.Data,
			"PostTotal":  posts.Meta.Total,
			"Categories": client.ListCategories(ctx),
		})
	}
}

// AdminPostsHandler lists posts for the admin console with an optional
// status filter. The token makes drafts visible.
func AdminPostsHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

		result := client.ListPosts(c.Request.Context(), contentapi.ListPostsParams{
			Page:   page,
			Limit:  contentapi.DefaultPageLimit,
			Search: c.Query("busca"),
			Status: models.PostStatus(c.Query("status")),
		}, middleware.Token(c))

		c.HTML(http.StatusOK, "painel_posts.tmpl", gin.H{
			"Site":   site(),
			"Posts":  result.Data,
			"Meta":   result.Meta,
			"Status": c.Query("status"),
		})
	}
}

// AdminPostFormHandler renders the post editor, blank for new posts or
// pre-filled when a slug is given.
func AdminPostFormHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		data := gin.H{
			"Site":       site(),
			"Categories": client.ListCategories(ctx),
			"Tags":       client.ListTags(ctx),
		}

		if slug := c.Param("slug"); slug != "" {
			post := client.GetPostBySlug(ctx, slug)
			if post == nil {
				c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
				return
			}
			data["Post"] = post
		}

		c.HTML(http.StatusOK, "painel_post_form.tmpl", data)
	}
}

// AdminPostCreateHandler creates a post from the submitted form. A blank
// slug is derived from the title.
func AdminPostCreateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.CreatePostParams{
			Title:     c.PostForm("title"),
			Slug:      c.PostForm("slug"),
			Excerpt:   c.PostForm("excerpt"),
			Content:   c.PostForm("content"),
			Thumbnail: c.PostForm("thumbnail"),
			Status:    models.PostStatus(c.PostForm("status")),
		}
		if params.Slug == "" {
			params.Slug = content.Slugify(params.Title)
		}
		params.CategoryID, _ = strconv.Atoi(c.PostForm("category_id"))
		params.UserID, _ = strconv.Atoi(c.PostForm("user_id"))
		params.Tags = formIntValues(c, "tags")

		post, err := client.CreatePost(c.Request.Context(), params, middleware.Token(c))
		if err != nil {
			c.HTML(apiErrorStatus(err), "painel_post_form.tmpl", gin.H{
				"Site":       site(),
				"Error":      err.Error(),
				"Form":       params,
				"Categories": client.ListCategories(c.Request.Context()),
				"Tags":       client.ListTags(c.Request.Context()),
			})
			return
		}
		c.Redirect(http.StatusFound, "/painel/posts/"+post.Slug+"/editar")
	}
}

// AdminPostUpdateHandler applies the submitted form as a partial update.
// Only submitted fields go on the wire.
func AdminPostUpdateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}

		params := models.UpdatePostParams{
			Title:     formString(c, "title"),
			Slug:      formString(c, "slug"),
			Excerpt:   formString(c, "excerpt"),
			Content:   formString(c, "content"),
			Thumbnail: formString(c, "thumbnail"),
			Tags:      formIntValues(c, "tags"),
		}
		if v := formString(c, "status"); v != nil {
			status := models.PostStatus(*v)
			params.Status = &status
		}
		if v := formString(c, "category_id"); v != nil {
			if id, err := strconv.Atoi(*v); err == nil {
				params.CategoryID = &id
			}
		}

		post, err := client.UpdatePost(c.Request.Context(), id, params, middleware.Token(c))
		if err != nil {
			c.HTML(apiErrorStatus(err), "painel_post_form.tmpl", gin.H{
				"Site":  site(),
				"Error": err.Error(),
			})
			return
		}
		c.Redirect(http.StatusFound, "/painel/posts/"+post.Slug+"/editar")
	}
}

// AdminPostPublishHandler flips a post between draft and published.
func AdminPostPublishHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}
		publish := c.PostForm("action") != "unpublish"

		if _, err := client.PublishPost(c.Request.Context(), id, publish, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/posts")
	}
}

// AdminPostDeleteHandler removes a post.
func AdminPostDeleteHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}
		if err := client.DeletePost(c.Request.Context(), id, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/posts")
	}
}

// formString returns the field as a pointer, nil when absent from the form.
func formString(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// formIntValues parses a repeated numeric form field (tag checkboxes).
func formIntValues(c *gin.Context, key string) []int {
	raw := c.PostFormArray(key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		if n, err := strconv.Atoi(s); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// apiErrorStatus maps a propagated client failure onto the response status.
// Transport failures (status 0) surface as 502.
func apiErrorStatus(err error) int {
	var apiErr *contentapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

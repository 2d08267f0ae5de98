package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"game-press/config"
	"game-press/contentapi"
	"game-press/models"
	"game-press/web/services"
)

// site injects the publication identity every page shares.
func site() gin.H {
	cfg := config.GetConfig().Site
	return gin.H{
		"Name":        cfg.Name,
		"URL":         cfg.URL,
		"Description": cfg.Description,
	}
}

// HomeHandler renders the landing page: hero post, recent and popular rails,
// category navigation and the affiliate product row. Every read degrades
// independently, so a dead content API still yields a page.
func HomeHandler(client *contentapi.Client, svc *services.PostViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var featured *services.PostCard
		if p := client.FeaturedPost(ctx); p != nil {
			card := svc.Card(*p)
			featured = &card
		}

		c.HTML(http.StatusOK, "home.tmpl", gin.H{
			"Site":       site(),
			"Featured":   featured,
			"Recent":     svc.Cards(client.RecentPosts(ctx)),
			"Popular":    svc.Cards(client.PopularPosts(ctx)),
			"Categories": client.ListCategories(ctx),
			"Products":   client.PublicProducts(ctx),
		})
	}
}

// BlogHandler renders the paginated post index with category, tag and search
// filters passed straight through to the content API.
func BlogHandler(client *contentapi.Client, svc *services.PostViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

		params := contentapi.ListPostsParams{
			Page:     page,
			Limit:    contentapi.DefaultPageLimit,
			Category: c.Query("categoria"),
			Tag:      c.Query("tag"),
			Search:   c.Query("busca"),
		}
		result := client.ListPosts(c.Request.Context(), params, "")

		c.HTML(http.StatusOK, "blog.tmpl", gin.H{
			"Site":       site(),
			"Posts":      svc.Cards(result.Data),
			"Meta":       result.Meta,
			"PrevPage":   prevPage(result.Meta),
			"NextPage":   nextPage(result.Meta),
			"Category":   params.Category,
			"Tag":        params.Tag,
			"Search":     params.Search,
			"Categories": client.ListCategories(c.Request.Context()),
		})
	}
}

// PostHandler renders one article: sanitized body with heading anchors,
// table of contents, reading time and the related-posts rail.
func PostHandler(client *contentapi.Client, svc *services.PostViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post := client.GetPostBySlug(c.Request.Context(), c.Param("slug"))
		if post == nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}

		c.HTML(http.StatusOK, "post.tmpl", gin.H{
			"Site": site(),
			"Post": svc.View(c.Request.Context(), *post),
		})
	}
}

// CategoryHandler renders one category's paginated posts.
func CategoryHandler(client *contentapi.Client, svc *services.PostViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

		result := client.CategoryPosts(c.Request.Context(), slug, contentapi.CategoryPostsParams{
			Page:  page,
			Limit: contentapi.DefaultPageLimit,
		})

		c.HTML(http.StatusOK, "category.tmpl", gin.H{
			"Site":     site(),
			"Slug":     slug,
			"Posts":    svc.Cards(result.Data),
			"Meta":     result.Meta,
			"PrevPage": prevPage(result.Meta),
			"NextPage": nextPage(result.Meta),
		})
	}
}

// ProductsHandler renders the public affiliate products page. Inactive
// products are already filtered out by the client.
func ProductsHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "products.tmpl", gin.H{
			"Site":     site(),
			"Products": client.PublicProducts(c.Request.Context()),
		})
	}
}

// prevPage and nextPage feed the pagination links; zero means no link.
func prevPage(m models.Meta) int {
	if m.Page > 1 {
		return m.Page - 1
	}
	return 0
}

func nextPage(m models.Meta) int {
	if m.Page < m.TotalPages {
		return m.Page + 1
	}
	return 0
}

// StaticPageHandler renders a template with no data beyond the site identity
// (about, contact, privacy).
func StaticPageHandler(templateName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, templateName, gin.H{"Site": site()})
	}
}

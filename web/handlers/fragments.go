package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"game-press/contentapi"
	"game-press/web/services"
)

// FragmentPostsHandler serves the JSON consumed by the load-more widget on
// the blog index. Same degrading behavior as the page itself: a dead API
// answers an empty page, never an error.
func FragmentPostsHandler(client *contentapi.Client, svc *services.PostViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(contentapi.DefaultPageLimit)))

		result := client.ListPosts(c.Request.Context(), contentapi.ListPostsParams{
			Page:     page,
			Limit:    limit,
			Category: c.Query("categoria"),
			Tag:      c.Query("tag"),
			Search:   c.Query("busca"),
		}, "")

		c.JSON(http.StatusOK, gin.H{
			"posts": svc.Cards(result.Data),
			"meta":  result.Meta,
		})
	}
}

// FragmentProductsHandler serves the JSON product row embedded on article
// pages.
func FragmentProductsHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"products": client.PublicProducts(c.Request.Context()),
		})
	}
}

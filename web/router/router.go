package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"game-press/contentapi"
	"game-press/web/handlers"
	"game-press/web/middleware"
	"game-press/web/services"
)

// New wires the full site: public pages, feeds, JSON fragments and the
// /painel admin console.
func New(client *contentapi.Client, store sessions.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	r.SetFuncMap(handlers.FuncMap)
	r.LoadHTMLGlob("templates/*.tmpl")

	postViews := services.NewPostViewService(client)

	// Health check probes the content API. A dead API is reported but the
	// process stays up since public reads degrade.
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := client.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "content_api": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pages
	r.GET("/", handlers.HomeHandler(client, postViews))
	r.GET("/blog", handlers.BlogHandler(client, postViews))
	r.GET("/blog/:slug", handlers.PostHandler(client, postViews))
	r.GET("/categoria/:slug", handlers.CategoryHandler(client, postViews))
	r.GET("/produtos", handlers.ProductsHandler(client))
	r.GET("/sobre", handlers.StaticPageHandler("about.tmpl"))
	r.GET("/contato", handlers.StaticPageHandler("contact.tmpl"))

	// Feeds
	r.GET("/feed.xml", handlers.RSSHandler(client))
	r.GET("/sitemap.xml", handlers.SitemapHandler(client))

	// JSON fragments consumed by the load-more widgets
	fragments := r.Group("/api/fragments")
	{
		fragments.GET("/posts", handlers.FragmentPostsHandler(client, postViews))
		fragments.GET("/products", handlers.FragmentProductsHandler(client))
	}

	// Admin console
	r.GET("/painel/login", handlers.LoginFormHandler())
	r.POST("/painel/login", handlers.LoginSubmitHandler(client, store))
	r.POST("/painel/logout", handlers.LogoutHandler(store))

	painel := r.Group("/painel")
	painel.Use(middleware.AdminSession(store))
	{
		painel.GET("", handlers.DashboardHandler(client))

		painel.GET("/posts", handlers.AdminPostsHandler(client))
		painel.GET("/posts/novo", handlers.AdminPostFormHandler(client))
		painel.GET("/posts/:slug/editar", handlers.AdminPostFormHandler(client))
		painel.POST("/posts", handlers.AdminPostCreateHandler(client))
		painel.POST("/posts/:id", handlers.AdminPostUpdateHandler(client))
		painel.POST("/posts/:id/publicar", handlers.AdminPostPublishHandler(client))
		painel.POST("/posts/:id/excluir", handlers.AdminPostDeleteHandler(client))

		painel.GET("/categorias", handlers.AdminCategoriesHandler(client))
		painel.POST("/categorias", handlers.AdminCategoryCreateHandler(client))
		painel.POST("/categorias/:id", handlers.AdminCategoryUpdateHandler(client))
		painel.POST("/categorias/:id/excluir", handlers.AdminCategoryDeleteHandler(client))

		painel.GET("/tags", handlers.AdminTagsHandler(client))
		painel.POST("/tags", handlers.AdminTagCreateHandler(client))
		painel.POST("/tags/:id", handlers.AdminTagUpdateHandler(client))
		painel.POST("/tags/:id/excluir", handlers.AdminTagDeleteHandler(client))

		painel.GET("/usuarios", handlers.AdminUsersHandler(client))
		painel.POST("/usuarios", handlers.AdminUserCreateHandler(client))
		painel.POST("/usuarios/:id", handlers.AdminUserUpdateHandler(client))
		painel.POST("/usuarios/:id/excluir", handlers.AdminUserDeleteHandler(client))

		painel.GET("/produtos", handlers.AdminProductsHandler(client))
		painel.POST("/produtos", handlers.AdminProductCreateHandler(client))
		painel.POST("/produtos/:id", handlers.AdminProductUpdateHandler(client))
		painel.POST("/produtos/:id/excluir", handlers.AdminProductDeleteHandler(client))

		painel.POST("/upload", handlers.AdminUploadHandler(client))
	}

	return r
}

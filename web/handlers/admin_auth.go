package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"game-press/contentapi"
	"game-press/internal/logger"
	"game-press/web/middleware"
)

// LoginFormHandler renders the admin login page.
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "painel_login.tmpl", gin.H{"Site": site()})
	}
}

// LoginSubmitHandler exchanges the submitted credentials for a bearer token
// and stores it on the session cookie. Failures re-render the form with the
// API's message.
func LoginSubmitHandler(client *contentapi.Client, store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		auth, err := client.Login(c.Request.Context(), email, password)
		if err != nil {
			c.HTML(http.StatusUnauthorized, "painel_login.tmpl", gin.H{
				"Site":  site(),
				"Email": email,
				"Error": err.Error(),
			})
			return
		}

		if err := middleware.SaveAdminSession(store, c, auth); err != nil {
			logger.Log.Errorf("save admin session: %v", err)
			c.HTML(http.StatusInternalServerError, "painel_login.tmpl", gin.H{
				"Site":  site(),
				"Error": "não foi possível iniciar a sessão",
			})
			return
		}

		c.Redirect(http.StatusFound, "/painel")
	}
}

// LogoutHandler drops the session and returns to the login page.
func LogoutHandler(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := middleware.ClearAdminSession(store, c); err != nil {
			logger.Log.Errorf("clear admin session: %v", err)
		}
		c.Redirect(http.StatusFound, "/painel/login")
	}
}

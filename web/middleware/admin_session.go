package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"game-press/contentapi"
)

// SessionName is the admin console cookie.
const SessionName = "gamepress_session"

// Context keys set by AdminSession for downstream handlers.
const (
	CtxToken    = "api_token"
	CtxUserName = "user_name"
	CtxUserRole = "user_role"
)

const (
	sessionKeyToken = "token"
	sessionKeyName  = "user_name"
	sessionKeyRole  = "user_role"
)

// NewSessionStore builds the cookie store backing the admin session.
func NewSessionStore(secret string) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// AdminSession guards the admin console. Requests without a session-held
// bearer token are redirected to the login page; authenticated requests get
// the token and user identity on the gin context.
func AdminSession(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := store.Get(c.Request, SessionName)

		token, ok := session.Values[sessionKeyToken].(string)
		if !ok || token == "" {
			c.Redirect(http.StatusFound, "/painel/login")
			c.Abort()
			return
		}

		c.Set(CtxToken, token)
		if name, ok := session.Values[sessionKeyName].(string); ok {
			c.Set(CtxUserName, name)
		}
		if role, ok := session.Values[sessionKeyRole].(string); ok {
			c.Set(CtxUserRole, role)
		}
		c.Next()
	}
}

// SaveAdminSession stores a fresh login on the cookie.
func SaveAdminSession(store sessions.Store, c *gin.Context, auth *contentapi.AuthSession) error {
	session, _ := store.Get(c.Request, SessionName)
	session.Values[sessionKeyToken] = auth.Token
	session.Values[sessionKeyName] = auth.User.Name
	session.Values[sessionKeyRole] = string(auth.User.Role)
	return session.Save(c.Request, c.Writer)
}

// ClearAdminSession drops the session cookie on logout.
func ClearAdminSession(store sessions.Store, c *gin.Context) error {
	session, _ := store.Get(c.Request, SessionName)
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}

// Token returns the session-held bearer token set by AdminSession.
func Token(c *gin.Context) string {
	token, _ := c.Get(CtxToken)
	s, _ := token.(string)
	return s
}

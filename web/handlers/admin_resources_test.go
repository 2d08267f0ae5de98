package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-press/contentapi"
	"game-press/web/middleware"
)

// adminEngine mounts one admin route with a stubbed session token, the way
// AdminSession would populate it.
func adminEngine(method, route string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetFuncMap(FuncMap)
	r.LoadHTMLGlob("../../templates/*.tmpl")
	r.Handle(method, route, func(c *gin.Context) {
		c.Set(middleware.CtxToken, "tok-admin")
	}, handler)
	return r
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminCategoryUpdateHandler(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data":{"id":7,"name":"Consoles","slug":"consoles"}}`))
	}))
	defer server.Close()
	client := contentapi.NewWithBaseURL(server.URL)

	r := adminEngine(http.MethodPost, "/painel/categorias/:id", AdminCategoryUpdateHandler(client))
	w := postForm(t, r, "/painel/categorias/7", url.Values{
		"name": {"Consoles"},
		"slug": {"consoles"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/painel/categorias", w.Header().Get("Location"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/categories/7", gotPath)
	assert.Equal(t, "Bearer tok-admin", gotAuth)
	assert.Equal(t, "Consoles", gotBody["name"])
	// fields absent from the form stay off the wire
	_, hasColor := gotBody["color"]
	assert.False(t, hasColor)
}

func TestAdminTagUpdateHandler(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data":{"id":3,"name":"RPG","slug":"rpg"}}`))
	}))
	defer server.Close()
	client := contentapi.NewWithBaseURL(server.URL)

	r := adminEngine(http.MethodPost, "/painel/tags/:id", AdminTagUpdateHandler(client))
	w := postForm(t, r, "/painel/tags/3", url.Values{"name": {"RPG"}, "slug": {"rpg"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/painel/tags", w.Header().Get("Location"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/tags/3", gotPath)
	assert.Equal(t, "RPG", gotBody["name"])
}

func TestAdminUserUpdateHandlerSkipsBlankPassword(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data":{"id":5,"name":"Ana"}}`))
	}))
	defer server.Close()
	client := contentapi.NewWithBaseURL(server.URL)

	r := adminEngine(http.MethodPost, "/painel/usuarios/:id", AdminUserUpdateHandler(client))
	w := postForm(t, r, "/painel/usuarios/5", url.Values{
		"name":     {"Ana"},
		"email":    {"ana@example.com"},
		"password": {""},
		"role":     {"admin"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/users/5", gotPath)
	assert.Equal(t, "admin", gotBody["role"])
	_, hasPassword := gotBody["password"]
	assert.False(t, hasPassword, "blank password must not overwrite the stored one")
}

func TestAdminProductUpdateHandler(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data":{"id":9,"name":"Headset"}}`))
	}))
	defer server.Close()
	client := contentapi.NewWithBaseURL(server.URL)

	r := adminEngine(http.MethodPost, "/painel/produtos/:id", AdminProductUpdateHandler(client))
	w := postForm(t, r, "/painel/produtos/9", url.Values{
		"name":          {"Headset"},
		"price":         {"199.90"},
		"affiliate_url": {"https://loja.example.com/headset"},
		"active":        {"false"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/products/9", gotPath)
	assert.Equal(t, 199.90, gotBody["price"])
	assert.Equal(t, false, gotBody["active"])
}

func TestAdminUpdateHandlersRejectBadID(t *testing.T) {
	client := contentapi.NewWithBaseURL("http://127.0.0.1:0")

	testCases := []struct {
		name    string
		route   string
		path    string
		handler gin.HandlerFunc
	}{
		{"category", "/painel/categorias/:id", "/painel/categorias/abc", AdminCategoryUpdateHandler(client)},
		{"tag", "/painel/tags/:id", "/painel/tags/abc", AdminTagUpdateHandler(client)},
		{"user", "/painel/usuarios/:id", "/painel/usuarios/abc", AdminUserUpdateHandler(client)},
		{"product", "/painel/produtos/:id", "/painel/produtos/abc", AdminProductUpdateHandler(client)},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r := adminEngine(http.MethodPost, testCase.route, testCase.handler)
			w := postForm(t, r, testCase.path, url.Values{})
			require.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

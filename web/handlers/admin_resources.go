package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"game-press/content"
	"game-press/contentapi"
	"game-press/models"
	"game-press/web/middleware"
)

// AdminCategoriesHandler lists categories with the create form inline.
func AdminCategoriesHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "painel_categories.tmpl", gin.H{
			"Site":       site(),
			"Categories": client.ListCategories(c.Request.Context()),
		})
	}
}

// AdminCategoryCreateHandler creates a category, deriving the slug from the
// name when blank.
func AdminCategoryCreateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.CreateCategoryParams{
			Name:  c.PostForm("name"),
			Slug:  c.PostForm("slug"),
			Color: c.PostForm("color"),
		}
		if params.Slug == "" {
			params.Slug = content.Slugify(params.Name)
		}

		if _, err := client.CreateCategory(c.Request.Context(), params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_categories.tmpl", gin.H{
				"Site":       site(),
				"Error":      err.Error(),
				"Categories": client.ListCategories(c.Request.Context()),
			})
			return
		}
		c.Redirect(http.StatusFound, "/painel/categorias")
	}
}

// AdminCategoryUpdateHandler applies the inline edit form of one category
// row. Only submitted fields go on the wire.
func AdminCategoryUpdateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}

		params := models.UpdateCategoryParams{
			Name:        formString(c, "name"),
			Slug:        formString(c, "slug"),
			Description: formString(c, "description"),
			Color:       formString(c, "color"),
		}

		if _, err := client.UpdateCategory(c.Request.Context(), id, params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/categorias")
	}
}

// AdminCategoryDeleteHandler removes a category.
func AdminCategoryDeleteHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}
		if err := client.DeleteCategory(c.Request.Context(), id, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/categorias")
	}
}

// AdminTagsHandler lists tags with the create form inline.
func AdminTagsHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "painel_tags.tmpl", gin.H{
			"Site": site(),
			"Tags": client.ListTags(c.Request.Context()),
		})
	}
}

// AdminTagCreateHandler creates a tag.
func AdminTagCreateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.CreateTagParams{
			Name: c.PostForm("name"),
			Slug: c.PostForm("slug"),
		}
		if params.Slug == "" {
			params.Slug = content.Slugify(params.Name)
		}

		if _, err := client.CreateTag(c.Request.Context(), params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_tags.tmpl", gin.H{
				"Site":  site(),
				"Error": err.Error(),
				"Tags":  client.ListTags(c.Request.Context()),
			})
			return
		}
		c.Redirect(http.StatusFound, "/painel/tags")
	}
}

// AdminTagUpdateHandler applies the inline edit form of one tag row.
func AdminTagUpdateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}

		params := models.UpdateTagParams{
			Name: formString(c, "name"),
			Slug: formString(c, "slug"),
		}

		if _, err := client.UpdateTag(c.Request.Context(), id, params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/tags")
	}
}

// AdminTagDeleteHandler removes a tag.
func AdminTagDeleteHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}
		if err := client.DeleteTag(c.Request.Context(), id, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/tags")
	}
}

// AdminUsersHandler lists editorial accounts. Authenticated read: failures
// surface instead of degrading.
func AdminUsersHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := client.ListUsers(c.Request.Context(), middleware.Token(c))
		if err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.HTML(http.StatusOK, "painel_users.tmpl", gin.H{
			"Site":  site(),
			"Users": users,
		})
	}
}

// AdminUserCreateHandler creates an editorial account.
func AdminUserCreateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.CreateUserParams{
			Name:     c.PostForm("name"),
			Email:    c.PostForm("email"),
			Password: c.PostForm("password"),
			Role:     models.Role(c.PostForm("role")),
		}

		if _, err := client.CreateUser(c.Request.Context(), params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/usuarios")
	}
}

// AdminUserUpdateHandler applies the inline edit form of one account row.
// A blank password field leaves the stored password alone.
func AdminUserUpdateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}

		params := models.UpdateUserParams{
			Name:  formString(c, "name"),
			Email: formString(c, "email"),
		}
		if v := formString(c, "password"); v != nil && *v != "" {
			params.Password = v
		}
		if v := formString(c, "role"); v != nil && *v != "" {
			role := models.Role(*v)
			params.Role = &role
		}

		if _, err := client.UpdateUser(c.Request.Context(), id, params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/usuarios")
	}
}

// AdminUserDeleteHandler removes an editorial account.
func AdminUserDeleteHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}
		if err := client.DeleteUser(c.Request.Context(), id, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/usuarios")
	}
}

// AdminProductsHandler lists every product, inactive ones included.
func AdminProductsHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := client.ListProducts(c.Request.Context(), middleware.Token(c))
		if err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.HTML(http.StatusOK, "painel_products.tmpl", gin.H{
			"Site":     site(),
			"Products": products,
		})
	}
}

// AdminProductCreateHandler creates an affiliate product.
func AdminProductCreateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
		params := models.CreateProductParams{
			Name:         c.PostForm("name"),
			Price:        price,
			AffiliateURL: c.PostForm("affiliate_url"),
			Image:        c.PostForm("image"),
		}
		if v, err := strconv.ParseFloat(c.PostForm("original_price"), 64); err == nil {
			params.OriginalPrice = &v
		}
		if v, err := strconv.ParseFloat(c.PostForm("rating"), 64); err == nil {
			params.Rating = &v
		}

		if _, err := client.CreateProduct(c.Request.Context(), params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/produtos")
	}
}

// AdminProductUpdateHandler applies the inline edit form of one product row,
// including the active flag the public listing filters on.
func AdminProductUpdateHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}

		params := models.UpdateProductParams{
			Name:          formString(c, "name"),
			AffiliateURL:  formString(c, "affiliate_url"),
			Image:         formString(c, "image"),
			Price:         formFloat(c, "price"),
			OriginalPrice: formFloat(c, "original_price"),
			Rating:        formFloat(c, "rating"),
		}
		if v := formString(c, "active"); v != nil {
			if active, err := strconv.ParseBool(*v); err == nil {
				params.Active = &active
			}
		}

		if _, err := client.UpdateProduct(c.Request.Context(), id, params, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/produtos")
	}
}

// formFloat parses an optional numeric form field.
func formFloat(c *gin.Context, key string) *float64 {
	if v, ok := c.GetPostForm(key); ok && v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return &n
		}
	}
	return nil
}

// AdminProductDeleteHandler removes a product.
func AdminProductDeleteHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Site": site()})
			return
		}
		if err := client.DeleteProduct(c.Request.Context(), id, middleware.Token(c)); err != nil {
			c.HTML(apiErrorStatus(err), "painel_error.tmpl", gin.H{"Site": site(), "Error": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, "/painel/produtos")
	}
}

// AdminUploadHandler proxies an image upload to the content API and answers
// JSON for the editor widget.
func AdminUploadHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "arquivo de imagem ausente"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		result, err := client.UploadImage(c.Request.Context(), fileHeader.Filename, file, middleware.Token(c))
		if err != nil {
			c.JSON(apiErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

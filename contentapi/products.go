package contentapi

import (
	"context"
	"encoding/json"
	"net/http"
	"path"
	"strconv"

	"game-press/models"
)

// PublicProducts lists the affiliate products shown on public pages,
// filtered to active ones. Degrading read: any failure yields an empty list.
// Accepts both the bare-array and enveloped response shapes.
func (c *Client) PublicProducts(ctx context.Context) []models.Product {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/products", nil, "", &raw); err != nil {
		logDegraded("public products", err)
		return []models.Product{}
	}

	all := listFromRaw[models.Product](raw)
	active := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// ListProducts lists every product including inactive ones for the admin
// panel. Authenticated read: failures propagate.
func (c *Client) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/products", nil, token, &raw); err != nil {
		return nil, err
	}
	products := listFromRaw[models.Product](raw)
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// CreateProduct creates a product. Write: failures propagate.
func (c *Client) CreateProduct(ctx context.Context, params models.CreateProductParams, token string) (*models.Product, error) {
	return c.productWrite(ctx, http.MethodPost, "/api/products", params, token)
}

// UpdateProduct updates a product by id. Write: failures propagate.
func (c *Client) UpdateProduct(ctx context.Context, id int, params models.UpdateProductParams, token string) (*models.Product, error) {
	return c.productWrite(ctx, http.MethodPut, path.Join("/api/products", strconv.Itoa(id)), params, token)
}

// DeleteProduct removes a product. Write: failures propagate.
func (c *Client) DeleteProduct(ctx context.Context, id int, token string) error {
	return c.do(ctx, http.MethodDelete, path.Join("/api/products", strconv.Itoa(id)), nil, nil, token, nil)
}

func (c *Client) productWrite(ctx context.Context, method, relPath string, body any, token string) (*models.Product, error) {
	var out struct {
		Data *models.Product `json:"data"`
	}
	if err := c.do(ctx, method, relPath, nil, body, token, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, &APIError{Message: "invalid API response: product missing"}
	}
	return out.Data, nil
}

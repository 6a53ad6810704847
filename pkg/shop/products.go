package shop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListProducts fetches the full public catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.call(ctx, "list_products", http.MethodGet, "/api/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product's detail view.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	path := fmt.Sprintf("/api/products/details/%d", id)
	if err := c.call(ctx, "get_product", http.MethodGet, path, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// RelatedProducts lists products sharing the given category name.
func (c *Client) RelatedProducts(ctx context.Context, categoryName string) ([]Product, error) {
	var products []Product
	path := "/api/products/related?category=" + url.QueryEscape(categoryName)
	if err := c.call(ctx, "related_products", http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a catalog entry. Admin-only on the remote side.
func (c *Client) CreateProduct(ctx context.Context, token string, payload ProductPayload) (*Product, error) {
	var product Product
	if err := c.call(ctx, "create_product", http.MethodPost, "/api/products/create", token, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct edits a catalog entry. Admin-only on the remote side.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, payload ProductPayload) error {
	path := fmt.Sprintf("/api/products/update/%d", id)
	return c.call(ctx, "update_product", http.MethodPut, path, token, payload, nil)
}

// DeleteProduct removes a catalog entry. Admin-only on the remote side.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/products/remove/%d", id)
	return c.call(ctx, "delete_product", http.MethodDelete, path, token, nil, nil)
}

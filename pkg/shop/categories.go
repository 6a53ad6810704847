package shop

import (
	"context"
	"fmt"
	"net/http"
)

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.call(ctx, "list_categories", http.MethodGet, "/api/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a category. Duplicate names come back as a validation
// error carrying the remote message.
func (c *Client) CreateCategory(ctx context.Context, token, name string) (*Category, error) {
	var category Category
	payload := CategoryPayload{Name: name}
	if err := c.call(ctx, "create_category", http.MethodPost, "/api/Categories", token, payload, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, name string) error {
	path := fmt.Sprintf("/api/Categories/%d", id)
	return c.call(ctx, "update_category", http.MethodPut, path, token, CategoryPayload{ID: id, Name: name}, nil)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/Categories/%d", id)
	return c.call(ctx, "delete_category", http.MethodDelete, path, token, nil, nil)
}

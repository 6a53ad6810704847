package shop

import (
	"context"
	"fmt"
	"net/http"
)

// GetCart fetches the remote cart for a user. A missing cart surfaces as a
// NOT_FOUND error; callers render that as an empty cart.
func (c *Client) GetCart(ctx context.Context, token string, userID int64) (*Cart, error) {
	var cart Cart
	path := fmt.Sprintf("/api/Cart/%d", userID)
	if err := c.call(ctx, "get_cart", http.MethodGet, path, token, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem puts a product into the user's remote cart.
func (c *Client) AddItem(ctx context.Context, token string, payload AddCartItemRequest) error {
	return c.call(ctx, "add_cart_item", http.MethodPost, "/api/Cart/AddItem", token, payload, nil)
}

// UpdateQuantity sets the quantity on one cart item.
func (c *Client) UpdateQuantity(ctx context.Context, token string, cartItemID int64, quantity int) error {
	path := fmt.Sprintf("/api/Cart/UpdateQuantity/%d?quantity=%d", cartItemID, quantity)
	return c.call(ctx, "update_cart_quantity", http.MethodPut, path, token, nil, nil)
}

// RemoveItem deletes one cart item.
func (c *Client) RemoveItem(ctx context.Context, token string, cartItemID int64) error {
	path := fmt.Sprintf("/api/Cart/RemoveItem/%d", cartItemID)
	return c.call(ctx, "remove_cart_item", http.MethodDelete, path, token, nil, nil)
}

// ClearCart empties the user's remote cart.
func (c *Client) ClearCart(ctx context.Context, token string, userID int64) error {
	path := fmt.Sprintf("/api/Cart/ClearCart/%d", userID)
	return c.call(ctx, "clear_cart", http.MethodDelete, path, token, nil, nil)
}

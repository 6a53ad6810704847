package shop

import (
	"context"
	"fmt"
	"net/http"
)

// PlaceOrder submits a checkout payload composed from a cart snapshot.
func (c *Client) PlaceOrder(ctx context.Context, token string, payload PlaceOrderRequest) (*Order, error) {
	var order Order
	if err := c.call(ctx, "place_order", http.MethodPost, "/api/orders", token, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrdersByUser lists the order history for a user.
func (c *Client) OrdersByUser(ctx context.Context, token string, userID int64) ([]Order, error) {
	var orders []Order
	path := fmt.Sprintf("/api/Orders/ByUser/%d", userID)
	if err := c.call(ctx, "orders_by_user", http.MethodGet, path, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Admin-only on the
// remote side.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status string) error {
	path := fmt.Sprintf("/api/Orders/UpdateStatus/%d", orderID)
	return c.call(ctx, "update_order_status", http.MethodPut, path, token, UpdateOrderStatusRequest{Status: status}, nil)
}

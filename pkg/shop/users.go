package shop

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers fetches every account. Admin-only on the remote side.
func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	if err := c.call(ctx, "list_users", http.MethodGet, "/api/User", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser edits the name fields of a profile.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, payload UpdateUserRequest) error {
	path := fmt.Sprintf("/api/User/%d", id)
	return c.call(ctx, "update_user", http.MethodPut, path, token, payload, nil)
}

// UpdateUserRole reassigns an account role. Admin-only on the remote side.
func (c *Client) UpdateUserRole(ctx context.Context, token string, id int64, role string) error {
	path := fmt.Sprintf("/api/User/%d/role", id)
	return c.call(ctx, "update_user_role", http.MethodPut, path, token, UpdateUserRoleRequest{Role: role}, nil)
}

// DeleteUser removes an account. Admin-only on the remote side.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/User/%d", id)
	return c.call(ctx, "delete_user", http.MethodDelete, path, token, nil, nil)
}

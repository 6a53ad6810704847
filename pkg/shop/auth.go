package shop

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token. The gateway never verifies
// or mints tokens itself.
func (c *Client) Login(ctx context.Context, payload LoginRequest) (string, error) {
	var resp LoginResponse
	if err := c.call(ctx, "login", http.MethodPost, "/api/Auth/login", "", payload, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an account on the shop API.
func (c *Client) Register(ctx context.Context, payload RegisterRequest) error {
	return c.call(ctx, "register", http.MethodPost, "/api/Auth/register", "", payload, nil)
}

// Me fetches the profile of the token's owner.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.call(ctx, "me", http.MethodGet, "/api/Auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

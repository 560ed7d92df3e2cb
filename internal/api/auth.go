package api

import (
	"context"
	"fmt"
)

// LoginRequest is the credential payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Login exchanges credentials for a bearer token. The returned token
// is not stored; persisting it is the caller's decision.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("api: login succeeded but no token in response")
	}
	return &resp, nil
}

// Logout invalidates the current token server-side. A 401 is treated
// as success; the token was already dead.
func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, "/logout", nil, nil)
	if err != nil && IsUnauthorized(err) {
		return nil
	}
	return err
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

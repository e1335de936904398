package apiclient

import (
	"context"
	"net/http"

	"threadline/web/internal/model"
)

// Login exchanges credentials for a user and a bearer token.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes the session token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

// GetUser returns the authenticated user.
func (c *Client) GetUser(ctx context.Context) (*model.User, error) {
	u, err := getOne[model.User](ctx, c, "/user", nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ForgotPassword sends a reset link to email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/forgot-password", nil, map[string]string{"email": email}, nil)
}

// ResetPassword completes a forgot-password flow.
func (c *Client) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/reset-password", nil, req, nil)
}

package apiclient

import (
	"context"
	"net/http"
)

// Login never ends a session on 401, a wrong password is not an expired token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, request{
		method:           http.MethodPost,
		path:             "/login",
		body:             req,
		csrf:             true,
		skipAuthRedirect: true,
	}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, request{
		method:           http.MethodPost,
		path:             "/register",
		body:             req,
		csrf:             true,
		skipAuthRedirect: true,
	}, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, request{
		method:           http.MethodPost,
		path:             "/logout",
		token:            token,
		skipAuthRedirect: true,
	}, nil)
}

// Me returns the user behind token. Pass SkipAuthRedirect for auth checks.
func (c *Client) Me(ctx context.Context, token string, opts ...CallOption) (User, error) {
	var out User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user",
		token:  token,
	}.with(opts), &out)
	return out, err
}

func (c *Client) Refresh(ctx context.Context, token string) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/refresh",
		token:  token,
	}, &out)
	return out, err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, request{
		method:           http.MethodPost,
		path:             "/forgot-password",
		body:             map[string]string{"email": email},
		csrf:             true,
		skipAuthRedirect: true,
	}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.do(ctx, request{
		method:           http.MethodPost,
		path:             "/reset-password",
		body:             req,
		csrf:             true,
		skipAuthRedirect: true,
	}, nil)
}

package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) GetProfile(ctx context.Context, token string) (User, error) {
	var out User
	err := c.do(ctx, request{method: http.MethodGet, path: "/user/profile", token: token}, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (User, error) {
	var out User
	err := c.do(ctx, request{method: http.MethodPut, path: "/user/profile", token: token, body: req}, &out)
	return out, err
}

func (c *Client) UpdatePassword(ctx context.Context, token string, req UpdatePasswordRequest) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/user/password", token: token, body: req}, nil)
}

func (c *Client) GetBalance(ctx context.Context, token string) (Balance, error) {
	var out Balance
	err := c.do(ctx, request{method: http.MethodGet, path: "/user/balance", token: token}, &out)
	return out, err
}

func (c *Client) ListRechargeRequests(ctx context.Context, token string) ([]RechargeRequest, error) {
	var out []RechargeRequest
	err := c.do(ctx, request{method: http.MethodGet, path: "/user/recharge-requests", token: token}, &out)
	return out, err
}

func (c *Client) ListUserOrders(ctx context.Context, token string, p ListParams) (OrderPage, error) {
	var out OrderPage
	err := c.do(ctx, request{
		method:       http.MethodGet,
		path:         "/user/orders",
		token:        token,
		query:        listQuery(p),
		keepEnvelope: true,
	}, &out)
	return out, err
}

func (c *Client) GetUserCart(ctx context.Context, token string) ([]CartItem, error) {
	var out []CartItem
	err := c.do(ctx, request{method: http.MethodGet, path: "/user/cart", token: token}, &out)
	return out, err
}

func (c *Client) GetUserWishlist(ctx context.Context, token string) ([]WishlistItem, error) {
	var out []WishlistItem
	err := c.do(ctx, request{method: http.MethodGet, path: "/user/wishlist", token: token}, &out)
	return out, err
}

// Admin user management.

func (c *Client) ListUsers(ctx context.Context, token string, p ListParams) (UserPage, error) {
	var out UserPage
	err := c.do(ctx, request{
		method:       http.MethodGet,
		path:         "/users",
		token:        token,
		query:        listQuery(p),
		keepEnvelope: true,
	}, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, token, id string) (User, error) {
	var out User
	err := c.do(ctx, request{method: http.MethodGet, path: resourcePath("/users", id), token: token}, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, req UpdateUserRequest) (User, error) {
	var out User
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/users", id), token: token, body: req}, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/users", id), token: token}, nil)
}

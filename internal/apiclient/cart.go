package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) GetCart(ctx context.Context, token string) ([]CartItem, error) {
	var out []CartItem
	err := c.do(ctx, request{method: http.MethodGet, path: "/cart", token: token}, &out)
	return out, err
}

func (c *Client) AddCartItem(ctx context.Context, token string, req AddCartItemRequest) (CartItem, error) {
	var out CartItem
	err := c.do(ctx, request{method: http.MethodPost, path: "/cart", token: token, body: req}, &out)
	return out, err
}

func (c *Client) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (CartItem, error) {
	var out CartItem
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   resourcePath("/cart", itemID),
		token:  token,
		body:   map[string]int{"quantity": quantity},
	}, &out)
	return out, err
}

func (c *Client) RemoveCartItem(ctx context.Context, token, itemID string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/cart", itemID), token: token}, nil)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/cart", token: token}, nil)
}

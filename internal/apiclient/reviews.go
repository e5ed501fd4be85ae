package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListProductReviews(ctx context.Context, productID string) ([]Review, error) {
	var out []Review
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/" + url.PathEscape(productID) + "/reviews",
	}, &out)
	return out, err
}

func (c *Client) ListReviews(ctx context.Context, token string) ([]Review, error) {
	var out []Review
	err := c.do(ctx, request{method: http.MethodGet, path: "/reviews", token: token}, &out)
	return out, err
}

func (c *Client) CreateReview(ctx context.Context, token string, in ReviewInput) (Review, error) {
	var out Review
	err := c.do(ctx, request{method: http.MethodPost, path: "/reviews", token: token, body: in}, &out)
	return out, err
}

func (c *Client) UpdateReview(ctx context.Context, token, id string, in ReviewInput) (Review, error) {
	var out Review
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/reviews", id), token: token, body: in}, &out)
	return out, err
}

func (c *Client) DeleteReview(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/reviews", id), token: token}, nil)
}

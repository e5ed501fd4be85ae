package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) GetWishlist(ctx context.Context, token string) ([]WishlistItem, error) {
	var out []WishlistItem
	err := c.do(ctx, request{method: http.MethodGet, path: "/wishlist", token: token}, &out)
	return out, err
}

func (c *Client) AddWishlistItem(ctx context.Context, token string, req AddWishlistItemRequest) (WishlistItem, error) {
	var out WishlistItem
	err := c.do(ctx, request{method: http.MethodPost, path: "/wishlist", token: token, body: req}, &out)
	return out, err
}

// UpdateWishlistItem switches the chosen specification of an entry.
func (c *Client) UpdateWishlistItem(ctx context.Context, token, itemID, specificationID string) (WishlistItem, error) {
	var out WishlistItem
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   resourcePath("/wishlist", itemID),
		token:  token,
		body:   map[string]string{"specification_id": specificationID},
	}, &out)
	return out, err
}

func (c *Client) RemoveWishlistItem(ctx context.Context, token, itemID string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/wishlist", itemID), token: token}, nil)
}

package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListOrders(ctx context.Context, token string, p ListParams) (OrderPage, error) {
	var out OrderPage
	err := c.do(ctx, request{
		method:       http.MethodGet,
		path:         "/orders",
		token:        token,
		query:        listQuery(p),
		keepEnvelope: true,
	}, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (Order, error) {
	var out Order
	err := c.do(ctx, request{method: http.MethodGet, path: resourcePath("/orders", id), token: token}, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (Order, error) {
	var out Order
	err := c.do(ctx, request{method: http.MethodPost, path: "/orders", token: token, body: req}, &out)
	return out, err
}

func (c *Client) UpdateOrder(ctx context.Context, token, id string, req UpdateOrderRequest) (Order, error) {
	var out Order
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/orders", id), token: token, body: req}, &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) (Order, error) {
	var out Order
	err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   resourcePath("/orders", id) + "/status",
		token:  token,
		body:   map[string]string{"status": status},
	}, &out)
	return out, err
}

func (c *Client) CancelOrder(ctx context.Context, token, id string) (Order, error) {
	var out Order
	err := c.do(ctx, request{method: http.MethodPost, path: resourcePath("/orders", id) + "/cancel", token: token}, &out)
	return out, err
}

func (c *Client) CompleteOrder(ctx context.Context, token, id string) (Order, error) {
	var out Order
	err := c.do(ctx, request{method: http.MethodPost, path: resourcePath("/orders", id) + "/complete", token: token}, &out)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/orders", id), token: token}, nil)
}

func (c *Client) ListOrderSpecifications(ctx context.Context, token, orderID string) ([]OrderSpecification, error) {
	var out []OrderSpecification
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders/" + url.PathEscape(orderID) + "/specifications",
		token:  token,
	}, &out)
	return out, err
}

func (c *Client) CreateOrderSpecification(ctx context.Context, token string, in OrderSpecificationInput) (OrderSpecification, error) {
	var out OrderSpecification
	err := c.do(ctx, request{method: http.MethodPost, path: "/order-specifications", token: token, body: in}, &out)
	return out, err
}

func (c *Client) DeleteOrderSpecification(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/order-specifications", id), token: token}, nil)
}

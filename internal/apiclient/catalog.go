package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Products, categories and their specifications. Reads are public, writes
// need an admin token.

func (c *Client) ListProducts(ctx context.Context, p ListParams) (ProductPage, error) {
	var out ProductPage
	err := c.do(ctx, request{
		method:       http.MethodGet,
		path:         "/products",
		query:        listQuery(p),
		keepEnvelope: true,
	}, &out)
	return out, err
}

func (c *Client) SearchProducts(ctx context.Context, term string, p ListParams) (ProductPage, error) {
	q := listQuery(p)
	q.Set("q", term)

	var out ProductPage
	err := c.do(ctx, request{
		method:       http.MethodGet,
		path:         "/products/search",
		query:        q,
		keepEnvelope: true,
	}, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	var out Product
	err := c.do(ctx, request{method: http.MethodGet, path: resourcePath("/products", id)}, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (Product, error) {
	var out Product
	err := c.do(ctx, request{method: http.MethodPost, path: "/products", token: token, body: in}, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in ProductInput) (Product, error) {
	var out Product
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/products", id), token: token, body: in}, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/products", id), token: token}, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := c.do(ctx, request{method: http.MethodGet, path: "/categories"}, &out)
	return out, err
}

func (c *Client) GetCategory(ctx context.Context, id string) (Category, error) {
	var out Category
	err := c.do(ctx, request{method: http.MethodGet, path: resourcePath("/categories", id)}, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, token string, in CategoryInput) (Category, error) {
	var out Category
	err := c.do(ctx, request{method: http.MethodPost, path: "/categories", token: token, body: in}, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, token, id string, in CategoryInput) (Category, error) {
	var out Category
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/categories", id), token: token, body: in}, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/categories", id), token: token}, nil)
}

func (c *Client) ListProductSpecifications(ctx context.Context, productID string) ([]Specification, error) {
	var out []Specification
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/" + url.PathEscape(productID) + "/specifications",
	}, &out)
	return out, err
}

func (c *Client) GetSpecification(ctx context.Context, id string) (Specification, error) {
	var out Specification
	err := c.do(ctx, request{method: http.MethodGet, path: resourcePath("/specifications", id)}, &out)
	return out, err
}

func (c *Client) CreateSpecification(ctx context.Context, token string, in SpecificationInput) (Specification, error) {
	var out Specification
	err := c.do(ctx, request{method: http.MethodPost, path: "/specifications", token: token, body: in}, &out)
	return out, err
}

func (c *Client) UpdateSpecification(ctx context.Context, token, id string, in SpecificationInput) (Specification, error) {
	var out Specification
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/specifications", id), token: token, body: in}, &out)
	return out, err
}

func (c *Client) DeleteSpecification(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/specifications", id), token: token}, nil)
}

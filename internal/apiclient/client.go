package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	csrfPath       = "/sanctum/csrf-cookie"
	xsrfCookieName = "XSRF-TOKEN"
)

// UnauthorizedHandler is invoked when a call that carried a bearer token is
// answered with 401. It runs before the error is returned to the caller.
type UnauthorizedHandler func(ctx context.Context, token string)

// Client calls the remote store API. One request per call: no caching,
// batching or retry.
type Client struct {
	baseURL        string
	origin         string
	httpClient     *http.Client
	logger         *zap.Logger
	onUnauthorized UnauthorizedHandler
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	origin := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		origin = u.Scheme + "://" + u.Host
	}

	return &Client{
		baseURL:    baseURL,
		origin:     origin,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("apiclient"),
	}
}

// OnUnauthorized registers the session transition triggered by a 401.
// Must be called before the client is shared.
func (c *Client) OnUnauthorized(h UnauthorizedHandler) {
	c.onUnauthorized = h
}

type callOptions struct {
	skipAuthRedirect bool
}

type CallOption func(*callOptions)

// SkipAuthRedirect keeps a 401 from ending the session. Used by auth
// checks and by the login call itself.
func SkipAuthRedirect() CallOption {
	return func(o *callOptions) {
		o.skipAuthRedirect = true
	}
}

type request struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any

	csrf             bool
	skipAuthRedirect bool
	// keepEnvelope decodes the whole body instead of its "data" member,
	// needed for paginated lists that carry "meta" next to "data".
	keepEnvelope bool
}

func (r request) with(opts []CallOption) request {
	o := callOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.skipAuthRedirect {
		r.skipAuthRedirect = true
	}
	return r
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	if r.csrf {
		cookies, xsrf, err := c.fetchCSRF(ctx)
		if err != nil {
			return err
		}
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		if xsrf != "" {
			req.Header.Set("X-XSRF-TOKEN", xsrf)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("store api request failed",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Error(err),
		)
		return &APIError{Message: "store api unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: "failed to read store api response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp.StatusCode, raw)

		if resp.StatusCode == http.StatusUnauthorized && !r.skipAuthRedirect && r.token != "" && c.onUnauthorized != nil {
			c.logger.Info("store api rejected credential, ending session",
				zap.String("method", r.method),
				zap.String("path", r.path),
			)
			c.onUnauthorized(ctx, r.token)
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if !r.keepEnvelope {
		raw = unwrapData(raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

func unwrapData(raw []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return raw
	}
	return env.Data
}

// fetchCSRF primes the XSRF cookie pair the API requires before
// state-changing auth calls and returns it for the follow-up request.
func (c *Client) fetchCSRF(ctx context.Context) ([]*http.Cookie, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.origin+csrfPath, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("csrf cookie request failed", zap.Error(err))
		return nil, "", &APIError{Message: "store api unreachable", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &APIError{Status: resp.StatusCode, Message: "failed to obtain csrf cookie"}
	}

	cookies := resp.Cookies()
	var xsrf string
	for _, ck := range cookies {
		if ck.Name == xsrfCookieName {
			xsrf, err = url.QueryUnescape(ck.Value)
			if err != nil {
				xsrf = ck.Value
			}
		}
	}
	return cookies, xsrf, nil
}

func listQuery(p ListParams) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", fmt.Sprintf("%d", p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", fmt.Sprintf("%d", p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.CategoryID != "" {
		q.Set("category_id", p.CategoryID)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

func resourcePath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

package client

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

	models "github.com/dubaitostars/starclient/internal"
)

const DefaultBaseURL = "https://api.dubaitostars.com/api"

// Client is a thin typed wrapper over the Dubai to Stars REST API. One
// method per endpoint, no retries, no caching.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	tokens     TokenSource
	timeout    time.Duration
}

// HTTPClient lets tests swap the transport.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for protected routes. Token
// returns models.ErrNoToken when nothing is stored.
type TokenSource interface {
	Token() (string, error)
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL: DefaultBaseURL,
		timeout: 15 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.timeout}
	}

	return client
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, dst)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	return c.do(req, dst)
}

// postForm submits form-encoded credentials; the auth service speaks
// x-www-form-urlencoded, not JSON.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, dst)
}

func (c *Client) do(req *http.Request, dst any) error {
	req.Header.Add("Accept", "application/json")
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return models.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return models.NewApiError(resp.StatusCode, errorDetail(body))
	}

	if dst == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, dst)
}

// errorDetail pulls the human-readable message out of an error body; the
// backend uses "detail", some proxies use "message" or "error".
func errorDetail(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, msg := range []string{payload.Detail, payload.Message, payload.Error} {
			if msg != "" {
				return msg
			}
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return "unexpected response from server"
}

// Health probes the service health endpoint.
func (c *Client) Health(ctx context.Context) (models.HealthStatus, error) {
	var ans models.HealthStatus
	err := c.get(ctx, "/health", nil, &ans)
	return ans, err
}

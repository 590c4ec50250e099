// Package backend is the typed client for the AutoLife REST backend. Each
// call is a single request/response pair: no retries, no caching. Non-success
// responses surface as *APIError carrying the server's human-readable message.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/autolife-uz/autolife-go/backend/metrics"
)

const defaultTimeout = 15 * time.Second

// TokenSource returns the current bearer token, or "" when unauthenticated.
// The session manager owns the token; the client only reads it per request.
type TokenSource func() string

// Client calls the AutoLife backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      TokenSource
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// ClientOption modifies a Client during construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenSource sets the bearer token source for authenticated endpoints.
func WithTokenSource(ts TokenSource) ClientOption {
	return func(c *Client) {
		c.token = ts
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation of API requests.
func WithMetrics(m *metrics.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[NewClient] base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewClient] invalid base URL")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("[NewClient] base URL %q must be absolute", baseURL)
	}

	client := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

// do performs a single JSON request. body and out may be nil. The endpoint
// label keeps metrics cardinality bounded (path template, not concrete path).
func (c *Client) do(ctx context.Context, method, path, endpoint string, query url.Values, body, out any) error {
	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return errors.Wrap(err, "[Client.do] build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	durationMs := float64(time.Since(start).Milliseconds())
	if err != nil {
		c.metrics.ObserveRequest(endpoint, "transport_error", durationMs)
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(endpoint, strconv.Itoa(resp.StatusCode), durationMs)
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Float64("duration_ms", durationMs).
		Msg("backend request")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] read response %s %s", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrapf(err, "[Client.do] decode response %s %s", method, path)
		}
	}
	return nil
}

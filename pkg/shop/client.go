package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZeroVik/PlayScaleFrontend/pkg/config"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/metrics"
	"github.com/sethvargo/go-retry"
)

const errorBodyReadLimit int64 = 2048

var errBaseURLRequired = errors.New("shop api base url is required")

// Client talks to the remote PlayScale shop API, the owner of record for all
// persistent storefront state. The client holds no state of its own; every
// authenticated call forwards the caller's bearer token.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	metrics      *metrics.ShopClientMetrics
	retryMax     int
	retryBackoff time.Duration
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMetrics attaches request instrumentation.
func WithMetrics(m *metrics.ShopClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the shop API client from configuration.
func NewClient(cfg config.ShopConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		retryMax:     cfg.RetryMax,
		retryBackoff: cfg.RetryBackoff,
	}
	if client.retryBackoff <= 0 {
		client.retryBackoff = 200 * time.Millisecond
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// call issues one request against the shop API and decodes a JSON body into out
// (when out is non-nil). Reads are retried on transport errors and 5xx answers;
// mutations are sent exactly once.
func (c *Client) call(ctx context.Context, operation, method, path, token string, payload, out any) error {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal "+operation+" request")
		}
		body = encoded
	}

	attempt := func(ctx context.Context) error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build "+operation+" request")
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.metrics.IncFailure(operation)
			transportErr := pkgerrors.Wrap(pkgerrors.CodeDependency, err, operation+" request failed")
			if method == http.MethodGet {
				return retry.RetryableError(transportErr)
			}
			return transportErr
		}
		defer func() { _ = resp.Body.Close() }()
		c.metrics.ObserveRequest(operation, resp.StatusCode, time.Since(start))

		if resp.StatusCode >= 500 && method == http.MethodGet {
			return retry.RetryableError(c.statusError(operation, resp))
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return c.statusError(operation, resp)
		}

		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode "+operation+" response")
		}
		return nil
	}

	if method == http.MethodGet && c.retryMax > 0 {
		backoff := retry.WithMaxRetries(uint64(c.retryMax), retry.NewExponential(c.retryBackoff))
		return retry.Do(ctx, backoff, attempt)
	}
	return attempt(ctx)
}

// statusError maps a non-2xx shop API answer onto the gateway error taxonomy.
// Remote validation messages are surfaced verbatim so the UI can show them.
func (c *Client) statusError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	message := remoteMessage(raw)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	case resp.StatusCode == http.StatusForbidden:
		return pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	case resp.StatusCode == http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, operation+" not found")
	case resp.StatusCode == http.StatusConflict, resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		if message == "" {
			message = operation + " rejected by shop api"
		}
		return pkgerrors.New(pkgerrors.CodeValidation, message)
	default:
		err := fmt.Errorf("status %d: %s", resp.StatusCode, message)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, operation+" failed")
	}
}

// remoteMessage pulls a human-readable message out of a shop API error body.
func remoteMessage(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Title   string `json:"title"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Title != "" {
			return envelope.Title
		}
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}

// Ping verifies the shop API is reachable by listing products.
func (c *Client) Ping(ctx context.Context) error {
	var products []Product
	return c.call(ctx, "ping", http.MethodGet, "/api/products", "", nil, &products)
}

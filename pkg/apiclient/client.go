package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bodies larger than this are truncated before being retained on APIError.
const maxErrorBodySize = 64 << 10

// TokenSource supplies the bearer token for authenticated requests. It
// returns false when no credential is available, in which case the request
// is sent anonymously.
type TokenSource func() (string, bool)

// Client talks to the expense-splitting API. All methods return either a
// decoded success payload or an error; non-2xx responses become *APIError
// values retaining the raw body for classification by pkg/apierror.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	tokenSource TokenSource
	logger      *slog.Logger
	userAgent   string
}

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client, e.g. with shared transports or
// test doubles.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenSource sets the credential source for the Authorization header.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = ts
	}
}

// WithLogger sets the logger for request diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default(),
		userAgent:  "chipin-go",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do performs a JSON request. body is marshaled when non-nil; out is
// decoded into when non-nil and the response has content.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.roundTrip(ctx, method, path, query, reader, contentType, out)
}

// doForm performs a form-encoded request. The token endpoint is the only
// consumer; the backend expects OAuth2 password-grant form fields there.
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, out any) error {
	reader := strings.NewReader(form.Encode())
	return c.roundTrip(ctx, method, path, nil, reader, "application/x-www-form-urlencoded", out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokenSource != nil {
		if token, ok := c.tokenSource(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		c.logger.Debug("api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", requestID))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Body:       raw,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func pageQuery(offset, limit int) url.Values {
	q := url.Values{}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

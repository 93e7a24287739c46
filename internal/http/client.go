package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client wraps a retryable HTTP client bound to one OKLink host and one
// credential pool. It is safe for concurrent use.
type Client struct {
	baseURL     string
	httpClient  *retryablehttp.Client
	keys        []string
	keySelector oklink.KeySelector
	logger      Logger
	debug       bool
	userAgent   string

	base         *http.Client
	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries of connection errors, 429 and 5xx
// responses. A retryMax of 0 keeps the single-attempt default.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithKeySelector replaces the per-call key choice.
func WithKeySelector(selector oklink.KeySelector) Option {
	return func(c *Client) {
		if selector != nil {
			c.keySelector = selector
		}
	}
}

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the underlying client. It is copied, never mutated.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.base = httpClient
	}
}

// NewClient creates a new HTTP client. The key pool is copied.
func NewClient(baseURL string, keys []string, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		keys:         append([]string(nil), keys...),
		keySelector:  oklink.RandomKeySelector,
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = client.newRetryableClient()

	return client
}

func (c *Client) newRetryableClient() *retryablehttp.Client {
	base := &http.Client{}
	if c.base != nil {
		clone := *c.base
		base = &clone
	}

	if c.timeout > 0 {
		base.Timeout = c.timeout
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = base
	retryClient.RetryMax = c.retryMax
	retryClient.RetryWaitMin = c.retryWaitMin
	retryClient.RetryWaitMax = c.retryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return retryClient
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Method     string
	URL        string
}

// Do performs an HTTP request. Failures are returned as
// *oklink.TransportError; for a non-2xx status the response is returned too.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, &oklink.TransportError{Method: method, URL: fullURL, Err: fmt.Errorf("creating request: %w", err)}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	key, authenticated := c.keySelector(c.keys)
	if authenticated {
		httpReq.Header.Set(constants.AccessKeyHeader, key)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	requestID := uuid.NewString()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"request_id":    requestID,
			"method":        method,
			"url":           fullURL,
			"authenticated": authenticated,
		})
	}

	start := time.Now()

	// The passthrough handler hands back the last response together with the
	// retry policy's error; the status check below covers that case.
	httpResp, err := c.httpClient.Do(httpReq)
	if httpResp == nil {
		if err == nil {
			err = oklink.ErrUnexpectedStatus
		}

		return nil, &oklink.TransportError{Method: method, URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &oklink.TransportError{
			Method:     method,
			URL:        fullURL,
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Method:     method,
		URL:        fullURL,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"request_id":  requestID,
			"status":      httpResp.StatusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"size":        len(body),
		})
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, &oklink.TransportError{
			Method:     method,
			URL:        fullURL,
			StatusCode: httpResp.StatusCode,
			Body:       Snippet(body),
			Err:        oklink.ErrUnexpectedStatus,
		}
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// BaseURL returns the host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Snippet truncates a body for inclusion in errors.
func Snippet(body []byte) string {
	if len(body) <= constants.ErrorBodySnippetLimit {
		return string(body)
	}

	return string(body[:constants.ErrorBodySnippetLimit]) + "..."
}

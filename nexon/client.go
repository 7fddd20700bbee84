package nexon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public Nexon Open API endpoint.
	DefaultBaseURL = "https://open.api.nexon.com"

	apiKeyHeader   = "x-nxopen-api-key"
	defaultTimeout = 30 * time.Second
	defaultRetries = 2
)

// Client talks to the Nexon Open API. It owns the transport, the API
// key and the validation strictness applied to every response; game
// resource packages wrap it with endpoint methods.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	strict    bool
	http      *retryablehttp.Client
	logger    zerolog.Logger
}

// NewClient creates a new Nexon Open API client. An empty baseURL
// selects DefaultBaseURL.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	o := clientOptions{
		timeout:    defaultTimeout,
		maxRetries: defaultRetries,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rc := o.httpClient
	if rc == nil {
		rc = retryablehttp.NewClient()
		rc.RetryMax = o.maxRetries
		rc.HTTPClient.Timeout = o.timeout
	}
	rc.Logger = leveledLogger{logger}

	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		userAgent: o.userAgent,
		strict:    o.strict,
		http:      rc,
		logger:    logger,
	}, nil
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Strict reports whether responses validate strictly.
func (c *Client) Strict() bool {
	return c.strict
}

// Get performs a GET request and wraps the completed exchange for
// parsing into T according to shape.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values, shape *Shape, opts *RequestOptions) (*Response[T], error) {
	return Do[T](ctx, c, http.MethodGet, path, query, nil, shape, opts)
}

// Do builds the request from the typed parameters and per-call options,
// dispatches it, and returns the response wrapper. Parsing itself is
// deferred until Response.Parse.
func Do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body map[string]any, shape *Shape, opts *RequestOptions) (*Response[T], error) {
	requestURL := c.baseURL + "/" + strings.TrimLeft(path, "/")

	merged := url.Values{}
	for key, vals := range query {
		merged[key] = vals
	}
	if opts != nil {
		for key, vals := range opts.ExtraQuery {
			merged[key] = vals
		}
	}
	if len(merged) > 0 {
		requestURL += "?" + merged.Encode()
	}

	var payload []byte
	if body != nil || (opts != nil && opts.ExtraBody != nil) {
		full := make(map[string]any, len(body))
		for k, v := range body {
			full[k] = v
		}
		if opts != nil {
			for k, v := range opts.ExtraBody {
				full[k] = v
			}
		}
		var err error
		payload, err = json.Marshal(full)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	if opts != nil && opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var reqBody any
	if payload != nil {
		reqBody = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if opts != nil {
		for key, vals := range opts.ExtraHeaders {
			req.Header[http.CanonicalHeaderKey(key)] = vals
		}
	}

	c.logger.Debug().Str("method", method).Str("url", requestURL).Msg("making Nexon API request")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	elapsed := time.Since(start)

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp, raw)
	}

	return NewResponse[T](resp, raw, elapsed, shape, c.strict, opts, c.logger), nil
}

// newAPIError maps a non-2xx response to an APIError, decoding the
// vendor error envelope when present.
func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
	var envelope struct {
		Error struct {
			Name    string `json:"name"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Name = envelope.Error.Name
		apiErr.Message = envelope.Error.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

package nexon

import (
	"net/http"
	"net/url"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	maxRetries int
	userAgent  string
	strict     bool
	httpClient *retryablehttp.Client
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts for
// transient transport failures.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithStrictValidation makes every response of this client validate
// against its full schema and fail loudly on any mismatch. Without it
// responses are constructed best-effort.
func WithStrictValidation() Option {
	return func(o *clientOptions) {
		o.strict = true
	}
}

// WithHTTPClient replaces the underlying retryable HTTP client.
func WithHTTPClient(client *retryablehttp.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// RequestOptions carries per-call overrides. The zero value of each
// field means "not given": nil maps add nothing, a zero Timeout keeps
// the client default, a nil PostParse skips the hook.
type RequestOptions struct {
	// ExtraHeaders are added to the request headers.
	ExtraHeaders http.Header
	// ExtraQuery values are merged into the request query string.
	ExtraQuery url.Values
	// ExtraBody keys are merged into a JSON request body.
	ExtraBody map[string]any
	// Timeout overrides the client timeout for this call only.
	Timeout time.Duration
	// PostParse transforms the parsed value before it is cached. It
	// receives the fully-typed object, not raw JSON, and runs at most
	// once per response.
	PostParse func(parsed any) (any, error)
}

// leveledLogger adapts zerolog to retryablehttp's logging interface.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

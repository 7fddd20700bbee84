package nexon

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Response wraps one completed HTTP exchange together with the shape
// its body should be parsed into. Parsing is lazy: the first Parse call
// runs the full pipeline and caches the result; later calls return the
// cached value without reinvoking the parser or the post-parse hook.
//
// A Response corresponds to exactly one finished exchange and assumes a
// single writer on first read. Guard concurrent first Parse calls
// externally if you share one across goroutines.
type Response[T any] struct {
	raw     *http.Response
	body    []byte
	elapsed time.Duration
	shape   *Shape
	strict  bool
	opts    *RequestOptions
	logger  zerolog.Logger

	parsed *T
}

// NewResponse builds a response wrapper over an already-completed
// exchange. The body must be fully read; raw's body is assumed drained.
func NewResponse[T any](raw *http.Response, body []byte, elapsed time.Duration, shape *Shape, strict bool, opts *RequestOptions, logger zerolog.Logger) *Response[T] {
	return &Response[T]{
		raw:     raw,
		body:    body,
		elapsed: elapsed,
		shape:   shape,
		strict:  strict,
		opts:    opts,
		logger:  logger,
	}
}

// Parse returns the typed parsed value, computing it on first use.
// Only successful parses are cached; a failed parse may be retried.
func (r *Response[T]) Parse() (T, error) {
	if r.parsed != nil {
		return *r.parsed, nil
	}

	var zero T
	p := &parser{resp: r.raw, body: r.body, strict: r.strict, logger: r.logger}
	value, err := p.parse(r.shape)
	if err != nil {
		return zero, err
	}

	out, err := materialize[T](r.shape, value)
	if err != nil {
		return zero, err
	}

	if r.opts != nil && r.opts.PostParse != nil {
		hooked, err := r.opts.PostParse(out)
		if err != nil {
			return zero, fmt.Errorf("post-parse hook: %w", err)
		}
		typed, ok := hooked.(T)
		if !ok {
			return zero, fmt.Errorf("%w: post-parse hook returned %T, want %T", ErrInvalidShape, hooked, out)
		}
		out = typed
	}

	r.parsed = &out
	return out, nil
}

// StatusCode returns the HTTP status code.
func (r *Response[T]) StatusCode() int {
	return r.raw.StatusCode
}

// Header returns the response headers.
func (r *Response[T]) Header() http.Header {
	return r.raw.Header
}

// Request returns the originating request.
func (r *Response[T]) Request() *http.Request {
	return r.raw.Request
}

// URL returns the final request URL.
func (r *Response[T]) URL() *url.URL {
	if r.raw.Request == nil {
		return nil
	}
	return r.raw.Request.URL
}

// Method returns the HTTP method of the originating request.
func (r *Response[T]) Method() string {
	if r.raw.Request == nil {
		return ""
	}
	return r.raw.Request.Method
}

// Body returns the raw response body bytes.
func (r *Response[T]) Body() []byte {
	return r.body
}

// Text returns the response body decoded as text.
func (r *Response[T]) Text() string {
	return string(r.body)
}

// Proto returns the protocol version, e.g. "HTTP/1.1".
func (r *Response[T]) Proto() string {
	return r.raw.Proto
}

// Elapsed returns the time taken for the complete request/response
// cycle, measured by the transport.
func (r *Response[T]) Elapsed() time.Duration {
	return r.elapsed
}

// HTTPResponse returns the underlying transport response.
func (r *Response[T]) HTTPResponse() *http.Response {
	return r.raw
}

// String summarizes the response for diagnostics and logging.
func (r *Response[T]) String() string {
	return fmt.Sprintf("<nexon.Response [%d %s] shape=%s>",
		r.raw.StatusCode, http.StatusText(r.raw.StatusCode), r.shape)
}

// extraFieldsSetter is the capability materialize uses to hand unknown
// keys to models that embed ExtraFields. The unexported method keeps
// the capability opt-in via embedding only.
type extraFieldsSetter interface {
	setExtraFields(map[string]any)
}

// ExtraFields preserves wire fields that are not part of a model's
// schema. Embed it in a model struct to receive them after lenient
// parsing.
type ExtraFields struct {
	extra map[string]any
}

func (e *ExtraFields) setExtraFields(m map[string]any) {
	e.extra = m
}

// Extra returns the preserved value of an unknown wire field.
func (e *ExtraFields) Extra(name string) (any, bool) {
	v, ok := e.extra[name]
	return v, ok
}

// ExtraKeys returns the names of all preserved unknown fields.
func (e *ExtraFields) ExtraKeys() []string {
	keys := make([]string, 0, len(e.extra))
	for k := range e.extra {
		keys = append(keys, k)
	}
	return keys
}

// materialize converts the canonical parsed value into the caller's
// target type. Short-circuit branches (text, binary, raw response, any)
// yield their value directly; structured shapes round-trip through JSON
// into the target.
func materialize[T any](shape *Shape, value any) (T, error) {
	var out T
	if value == nil {
		return out, nil
	}

	if direct, ok := value.(T); ok {
		return direct, nil
	}

	if s, ok := value.(string); ok {
		// Degraded non-JSON result with a non-string target.
		return out, fmt.Errorf("response was plain text %q, cannot convert to %T", truncate(s, 80), out)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("encode parsed value: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("convert parsed value to %T: %w", out, err)
	}

	if shape.Kind == ShapeModel && shape.Model != nil {
		if obj, ok := value.(map[string]any); ok {
			applyExtraFields(&out, shape.Model, obj)
		}
	}
	return out, nil
}

func applyExtraFields[T any](target *T, schema *ModelSchema, obj map[string]any) {
	setter, ok := any(target).(extraFieldsSetter)
	if !ok {
		if s, ok2 := any(*target).(extraFieldsSetter); ok2 {
			setter = s
		} else {
			return
		}
	}
	var extra map[string]any
	for key, v := range obj {
		if knownField(schema, key) {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = v
	}
	if extra != nil {
		setter.setExtraFields(extra)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package nexon

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors returned by the Nexon Open API client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid nexon client configuration")

	// ErrInvalidShape indicates an internal invariant violation: a shape
	// descriptor reached the parser that the public surface should never
	// produce. This signals a bug in the caller or the library, not a
	// bad server response.
	ErrInvalidShape = errors.New("invalid shape descriptor")
)

// FieldIssue is a single schema violation at a path within the decoded
// body, e.g. "rows[3].character_level".
type FieldIssue struct {
	Path    string
	Message string
}

func (i FieldIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// SchemaError reports every field that failed strict validation, or the
// single structural failure lenient construction hit.
type SchemaError struct {
	Shape  string
	Issues []FieldIssue
}

// Error implements the error interface, listing all offending paths.
func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("%d validation issue(s) for %s: %s", len(e.Issues), e.Shape, strings.Join(msgs, "; "))
}

// ValidationError is the single public error kind for recoverable
// response-parsing failures: content-type mismatches in strict mode and
// schema validation failures. It always carries the offending response
// and either the decoded body or the raw text.
type ValidationError struct {
	Response *http.Response
	Body     any
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return "response validation failed: " + e.Err.Error()
	}
	return "response validation failed"
}

// Unwrap returns the chained validation cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// BodyText returns the attached body as text for diagnostics.
func (e *ValidationError) BodyText() string {
	switch b := e.Body.(type) {
	case string:
		return b
	case []byte:
		return string(b)
	default:
		return fmt.Sprintf("%v", b)
	}
}

// APIError represents a non-2xx response from the Nexon Open API.
// The vendor reports errors as {"error": {"name": ..., "message": ...}}.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("nexon API error: status %d: %s: %s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("nexon API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates request throttling.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

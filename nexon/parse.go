package nexon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const jsonMediaType = "application/json"

// parser converts one completed HTTP exchange into the canonical value
// for a shape. It performs no network I/O; the exchange already
// happened before the parser is constructed.
type parser struct {
	resp   *http.Response
	body   []byte
	strict bool
	logger zerolog.Logger
}

// parse resolves the shape into exactly one handling branch and
// produces the canonical parsed value. Recoverable failures surface as
// *ValidationError; invariant violations wrap ErrInvalidShape.
func (p *parser) parse(shape *Shape) (any, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: nil shape", ErrInvalidShape)
	}

	switch shape.Kind {
	case ShapeNone:
		return nil, nil
	case ShapeText:
		return string(p.body), nil
	case ShapeBinary:
		return newBinaryContent(p.resp, p.body), nil
	case ShapeRawResponse:
		return p.rawResponse(), nil
	}

	if !shape.jsonCapable() {
		return nil, fmt.Errorf("%w: cannot parse a response into %s", ErrInvalidShape, shape)
	}

	// Strip parameters such as "; charset=utf-8" to get the bare media type.
	mediaType := strings.TrimSpace(strings.SplitN(p.resp.Header.Get("Content-Type"), ";", 2)[0])
	if mediaType != jsonMediaType {
		if shape.modelCapable() {
			// Some servers mislabel JSON payloads; try decoding anyway.
			var data any
			if err := json.Unmarshal(p.body, &data); err != nil {
				p.logger.Debug().Err(err).Str("content_type", mediaType).
					Msg("could not read JSON from response body")
			} else {
				return p.process(shape, data)
			}
		}

		if p.strict {
			return nil, &ValidationError{
				Response: p.resp,
				Body:     string(p.body),
				Message: fmt.Sprintf("expected Content-Type response header to be %q but received %q instead",
					jsonMediaType, mediaType),
			}
		}

		// Without strict validation the decoded text is returned as-is so
		// callers can still handle responses from APIs with bad headers.
		return string(p.body), nil
	}

	var data any
	if err := json.Unmarshal(p.body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return p.process(shape, data)
}

// process dispatches decoded JSON to the model constructor.
func (p *parser) process(shape *Shape, data any) (any, error) {
	if data == nil {
		return nil, nil
	}

	if shape.Kind == ShapeAny {
		return data, nil
	}

	if shape.Kind == ShapeModel && shape.Model != nil && shape.Model.Build != nil {
		return shape.Model.Build(p.resp, data)
	}

	mode := modeLenient
	if p.strict {
		mode = modeStrict
	}
	value, err := constructValue(shape, data, mode)
	if err != nil {
		return nil, &ValidationError{Response: p.resp, Body: data, Err: err}
	}
	return value, nil
}

// rawResponse hands back the transport response with its body restored,
// since the client drained it when the exchange completed.
func (p *parser) rawResponse() *http.Response {
	p.resp.Body = io.NopCloser(bytes.NewReader(p.body))
	return p.resp
}

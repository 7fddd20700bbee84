package nexon

import (
	"fmt"
	"strings"
)

// ShapeKind identifies the handling category of a response shape.
type ShapeKind int

const (
	// ShapeNone expects no body; parsing yields the zero value.
	ShapeNone ShapeKind = iota
	// ShapeText returns the decoded body text verbatim, no JSON parsing.
	ShapeText
	// ShapeBinary wraps the raw body bytes in a BinaryContent adapter.
	ShapeBinary
	// ShapeRawResponse passes the untouched *http.Response through.
	ShapeRawResponse
	// ShapeAny returns the decoded JSON completely unvalidated.
	ShapeAny
	// ShapeModel validates against a ModelSchema.
	ShapeModel
	// ShapeSequence is an ordered list of an element shape.
	ShapeSequence
	// ShapeMapping is a JSON object with uniform value shapes.
	ShapeMapping
	// ShapeUnion tries a set of variant shapes.
	ShapeUnion

	// Scalar kinds are only legal inside model schemas, never as a
	// top-level parse target.
	ShapeString
	ShapeInt
	ShapeFloat
	ShapeBool
)

// Shape describes what typed value a response body should be converted
// into. A Shape is immutable once built; callers pass one per request.
type Shape struct {
	Kind     ShapeKind
	Model    *ModelSchema
	Elem     *Shape   // sequence element
	Value    *Shape   // mapping value
	Variants []*Shape // union variants
}

// None expects an empty body.
func None() *Shape { return &Shape{Kind: ShapeNone} }

// Text returns the response body text without JSON parsing.
func Text() *Shape { return &Shape{Kind: ShapeText} }

// Binary wraps the raw response bytes; JSON decoding is never attempted.
func Binary() *Shape { return &Shape{Kind: ShapeBinary} }

// RawResponse passes the transport response through untouched.
func RawResponse() *Shape { return &Shape{Kind: ShapeRawResponse} }

// Any returns the decoded JSON as-is, bypassing validation entirely.
// This is the escape hatch for payloads with no published schema.
func Any() *Shape { return &Shape{Kind: ShapeAny} }

// Model validates the body against the given schema.
func Model(schema *ModelSchema) *Shape { return &Shape{Kind: ShapeModel, Model: schema} }

// SequenceOf describes an ordered list of elem.
func SequenceOf(elem *Shape) *Shape { return &Shape{Kind: ShapeSequence, Elem: elem} }

// MappingOf describes a JSON object whose values all match value.
// JSON object keys are always strings.
func MappingOf(value *Shape) *Shape { return &Shape{Kind: ShapeMapping, Value: value} }

// UnionOf describes a value matching one of the given variants.
func UnionOf(variants ...*Shape) *Shape { return &Shape{Kind: ShapeUnion, Variants: variants} }

// String describes a JSON string field.
func String() *Shape { return &Shape{Kind: ShapeString} }

// Int describes a JSON integer field.
func Int() *Shape { return &Shape{Kind: ShapeInt} }

// Float describes a JSON number field.
func Float() *Shape { return &Shape{Kind: ShapeFloat} }

// Bool describes a JSON boolean field.
func Bool() *Shape { return &Shape{Kind: ShapeBool} }

// jsonCapable reports whether the shape is a legal target for the
// JSON decoding branch of the parser.
func (s *Shape) jsonCapable() bool {
	switch s.Kind {
	case ShapeAny, ShapeModel, ShapeSequence, ShapeMapping, ShapeUnion:
		return true
	}
	return false
}

// modelCapable reports whether the shape carries a schema, which makes
// a fallback JSON decode worthwhile on mislabeled content types.
func (s *Shape) modelCapable() bool {
	return s.Kind == ShapeModel
}

// String renders the shape for diagnostics. Used in the response repr
// and in invariant-violation messages; not machine-parseable.
func (s *Shape) String() string {
	if s == nil {
		return "<nil>"
	}
	switch s.Kind {
	case ShapeNone:
		return "none"
	case ShapeText:
		return "text"
	case ShapeBinary:
		return "binary"
	case ShapeRawResponse:
		return "raw"
	case ShapeAny:
		return "any"
	case ShapeModel:
		if s.Model != nil && s.Model.Name != "" {
			return fmt.Sprintf("model(%s)", s.Model.Name)
		}
		return "model"
	case ShapeSequence:
		return fmt.Sprintf("sequence(%s)", s.Elem)
	case ShapeMapping:
		return fmt.Sprintf("mapping(%s)", s.Value)
	case ShapeUnion:
		names := make([]string, len(s.Variants))
		for i, v := range s.Variants {
			names[i] = v.String()
		}
		return fmt.Sprintf("union(%s)", strings.Join(names, "|"))
	case ShapeString:
		return "string"
	case ShapeInt:
		return "int"
	case ShapeFloat:
		return "float"
	case ShapeBool:
		return "bool"
	}
	return fmt.Sprintf("unknown(%d)", int(s.Kind))
}

package nexon

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// BuilderFunc is the custom builder capability: a schema that carries
// one takes over construction entirely, receiving the transport
// response and the decoded body. Validation becomes its responsibility.
type BuilderFunc func(resp *http.Response, data any) (any, error)

// ModelSchema describes a nominal model: its fields and, optionally, a
// custom builder.
type ModelSchema struct {
	Name   string
	Fields []Field
	Build  BuilderFunc
}

// Field describes one model field. Aliases are alternative wire names
// that are canonicalized to Name during construction; they are the only
// coercion strict mode performs.
type Field struct {
	Name     string
	Aliases  []string
	Required bool
	Shape    *Shape
}

// lookup finds the field value in the decoded object, trying the
// canonical name first and then each alias.
func (f Field) lookup(obj map[string]any) (any, string, bool) {
	if v, ok := obj[f.Name]; ok {
		return v, f.Name, true
	}
	for _, alias := range f.Aliases {
		if v, ok := obj[alias]; ok {
			return v, alias, true
		}
	}
	return nil, "", false
}

// known reports whether key names this field on the wire.
func (f Field) known(key string) bool {
	if key == f.Name {
		return true
	}
	for _, alias := range f.Aliases {
		if key == alias {
			return true
		}
	}
	return false
}

type constructMode int

const (
	// modeStrict validates the full schema and fails loudly, collecting
	// every offending field.
	modeStrict constructMode = iota
	// modeLenient assembles best-effort: extra fields are preserved,
	// unambiguous coercions are applied, and only a value that cannot
	// be read as a mapping/sequence at all is an error.
	modeLenient
)

// constructValue converts untyped decoded JSON into the canonical value
// for the given shape. The returned value is built from maps, slices
// and scalars with canonical field names, ready to be materialized into
// a target type.
func constructValue(shape *Shape, value any, mode constructMode) (any, error) {
	c := &constructor{mode: mode}
	out := c.build(shape, value, "")
	if len(c.issues) > 0 {
		return nil, &SchemaError{Shape: shape.String(), Issues: c.issues}
	}
	return out, nil
}

// constructor walks a shape and a decoded value together. One walker
// serves both strictness modes so the two cannot drift apart.
type constructor struct {
	mode   constructMode
	issues []FieldIssue
}

func (c *constructor) issue(path, format string, args ...any) {
	c.issues = append(c.issues, FieldIssue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (c *constructor) build(shape *Shape, value any, path string) any {
	if value == nil {
		switch shape.Kind {
		case ShapeAny:
			return nil
		case ShapeUnion:
			// null may be a legal variant; let the union branch decide
		default:
			if c.mode == modeStrict {
				c.issue(path, "expected %s, got null", shape)
			}
			return nil
		}
	}

	switch shape.Kind {
	case ShapeAny:
		return value
	case ShapeString:
		return c.buildString(value, path)
	case ShapeInt:
		return c.buildInt(value, path)
	case ShapeFloat:
		return c.buildFloat(value, path)
	case ShapeBool:
		return c.buildBool(value, path)
	case ShapeModel:
		return c.buildModel(shape.Model, value, path)
	case ShapeSequence:
		return c.buildSequence(shape.Elem, value, path)
	case ShapeMapping:
		return c.buildMapping(shape.Value, value, path)
	case ShapeUnion:
		return c.buildUnion(shape, value, path)
	}
	c.issue(path, "shape %s is not constructible from response data", shape)
	return value
}

func (c *constructor) buildModel(schema *ModelSchema, value any, path string) any {
	obj, ok := value.(map[string]any)
	if !ok {
		// Both modes fail here: lenient construction still needs a
		// mapping to assemble a model from.
		c.issue(path, "expected object for model %s, got %s", schema.Name, typeName(value))
		return value
	}

	out := make(map[string]any, len(obj))
	for _, field := range schema.Fields {
		v, _, present := field.lookup(obj)
		if !present {
			if field.Required && c.mode == modeStrict {
				c.issue(joinPath(path, field.Name), "missing required field")
			}
			continue
		}
		out[field.Name] = c.build(field.Shape, v, joinPath(path, field.Name))
	}

	for key, v := range obj {
		if knownField(schema, key) {
			continue
		}
		if c.mode == modeStrict {
			c.issue(joinPath(path, key), "unknown field")
			continue
		}
		// Lenient mode preserves extra fields rather than rejecting them.
		out[key] = v
	}
	return out
}

func (c *constructor) buildSequence(elem *Shape, value any, path string) any {
	list, ok := value.([]any)
	if !ok {
		c.issue(path, "expected array, got %s", typeName(value))
		return value
	}
	out := make([]any, len(list))
	for i, v := range list {
		out[i] = c.build(elem, v, fmt.Sprintf("%s[%d]", path, i))
	}
	return out
}

func (c *constructor) buildMapping(valShape *Shape, value any, path string) any {
	obj, ok := value.(map[string]any)
	if !ok {
		c.issue(path, "expected object, got %s", typeName(value))
		return value
	}
	out := make(map[string]any, len(obj))
	for key, v := range obj {
		out[key] = c.build(valShape, v, joinPath(path, key))
	}
	return out
}

func (c *constructor) buildUnion(shape *Shape, value any, path string) any {
	if len(shape.Variants) == 0 {
		c.issue(path, "union has no variants")
		return value
	}
	// A variant that validates strictly wins regardless of mode.
	for _, variant := range shape.Variants {
		trial := &constructor{mode: modeStrict}
		out := trial.build(variant, value, path)
		if len(trial.issues) == 0 {
			return out
		}
	}
	if c.mode == modeStrict {
		c.issue(path, "value does not match any variant of %s", shape)
		return value
	}
	// Best-effort: construct against the variant sharing the most field
	// names with the payload, ties resolved by declaration order.
	return c.build(closestVariant(shape.Variants, value), value, path)
}

func (c *constructor) buildString(value any, path string) any {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if c.mode == modeLenient {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if c.mode == modeStrict {
		c.issue(path, "expected string, got %s", typeName(value))
	}
	return value
}

func (c *constructor) buildInt(value any, path string) any {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) {
			return v
		}
		if c.mode == modeStrict {
			c.issue(path, "expected integer, got number %v", v)
		}
		return value
	case int, int64:
		return v
	case string:
		if c.mode == modeLenient {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				return n
			}
		}
	}
	if c.mode == modeStrict {
		c.issue(path, "expected integer, got %s", typeName(value))
	}
	return value
}

func (c *constructor) buildFloat(value any, path string) any {
	switch v := value.(type) {
	case float64:
		return v
	case int, int64:
		return v
	case string:
		if c.mode == modeLenient {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	if c.mode == modeStrict {
		c.issue(path, "expected number, got %s", typeName(value))
	}
	return value
}

func (c *constructor) buildBool(value any, path string) any {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if c.mode == modeLenient {
			if v == "true" {
				return true
			}
			if v == "false" {
				return false
			}
		}
	}
	if c.mode == modeStrict {
		c.issue(path, "expected boolean, got %s", typeName(value))
	}
	return value
}

func knownField(schema *ModelSchema, key string) bool {
	for _, f := range schema.Fields {
		if f.known(key) {
			return true
		}
	}
	return false
}

// closestVariant scores union variants against the payload: model
// variants by shared field names, other variants by JSON type match.
func closestVariant(variants []*Shape, value any) *Shape {
	best := variants[0]
	bestScore := -1
	for _, variant := range variants {
		score := 0
		switch variant.Kind {
		case ShapeModel:
			if obj, ok := value.(map[string]any); ok {
				for key := range obj {
					if knownField(variant.Model, key) {
						score++
					}
				}
			}
		case ShapeSequence:
			if _, ok := value.([]any); ok {
				score = 1
			}
		case ShapeMapping:
			if _, ok := value.(map[string]any); ok {
				score = 1
			}
		default:
			trial := &constructor{mode: modeStrict}
			trial.build(variant, value, "")
			if len(trial.issues) == 0 {
				score = 1
			}
		}
		if score > bestScore {
			best = variant
			bestScore = score
		}
	}
	return best
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", value)
}

package nexon

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCharacterSchema is a minimal model used across the package tests.
var testCharacterSchema = &ModelSchema{
	Name: "test.Character",
	Fields: []Field{
		{Name: "character_name", Required: true, Shape: String()},
		{Name: "character_level", Required: true, Shape: Int()},
		{Name: "world_name", Aliases: []string{"server_name"}, Shape: String()},
	},
}

type testCharacter struct {
	ExtraFields

	CharacterName  string `json:"character_name"`
	CharacterLevel int    `json:"character_level"`
	WorldName      string `json:"world_name"`
}

func makeHTTPResponse(status int, contentType, body string) *http.Response {
	req, _ := http.NewRequest(http.MethodGet, "https://open.api.nexon.com/maplestory/v1/character/basic", nil)
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Proto:      "HTTP/1.1",
		Header:     header,
		Request:    req,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func makeResponse[T any](contentType, body string, shape *Shape, strict bool, opts *RequestOptions) *Response[T] {
	raw := makeHTTPResponse(http.StatusOK, contentType, body)
	return NewResponse[T](raw, []byte(body), 25*time.Millisecond, shape, strict, opts, zerolog.Nop())
}

func TestParseNoContent(t *testing.T) {
	// The body is ignored entirely for a no-content target.
	resp := makeResponse[any]("application/json", `{"anything": "at all"}`, None(), true, nil)

	parsed, err := resp.Parse()
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestParseText(t *testing.T) {
	t.Run("charset parameter is ignored", func(t *testing.T) {
		resp := makeResponse[string]("text/plain; charset=utf-8", "hello world", Text(), true, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Equal(t, "hello world", parsed)
	})

	t.Run("no JSON parsing even for JSON bodies", func(t *testing.T) {
		resp := makeResponse[string]("application/json", `{"a":1}`, Text(), true, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, parsed)
	})
}

func TestParseBinary(t *testing.T) {
	// Binary targets never attempt JSON decoding, even when the server
	// claims application/json.
	resp := makeResponse[*BinaryContent]("application/json", "\x89PNG\r\n", Binary(), true, nil)

	parsed, err := resp.Parse()
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, []byte("\x89PNG\r\n"), parsed.Bytes())
	assert.Equal(t, "application/json", parsed.ContentType())
}

func TestParseRawResponse(t *testing.T) {
	resp := makeResponse[*http.Response]("application/json", `{"ok":true}`, RawResponse(), true, nil)

	parsed, err := resp.Parse()
	require.NoError(t, err)
	require.NotNil(t, parsed)

	// The passthrough must have a readable body even though the client
	// drained the original stream.
	body, err := io.ReadAll(parsed.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestParseModel(t *testing.T) {
	body := `{"character_name": "Luna", "character_level": 250, "world_name": "scania"}`

	t.Run("strict and lenient agree on exact match", func(t *testing.T) {
		strictResp := makeResponse[testCharacter]("application/json", body, Model(testCharacterSchema), true, nil)
		lenientResp := makeResponse[testCharacter]("application/json", body, Model(testCharacterSchema), false, nil)

		strictOut, err := strictResp.Parse()
		require.NoError(t, err)
		lenientOut, err := lenientResp.Parse()
		require.NoError(t, err)

		assert.Equal(t, strictOut.CharacterName, lenientOut.CharacterName)
		assert.Equal(t, strictOut.CharacterLevel, lenientOut.CharacterLevel)
		assert.Equal(t, strictOut.WorldName, lenientOut.WorldName)
		assert.Equal(t, "Luna", strictOut.CharacterName)
		assert.Equal(t, 250, strictOut.CharacterLevel)
	})

	t.Run("alias resolves to canonical field", func(t *testing.T) {
		aliased := `{"character_name": "Luna", "character_level": 250, "server_name": "scania"}`
		resp := makeResponse[testCharacter]("application/json", aliased, Model(testCharacterSchema), true, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Equal(t, "scania", parsed.WorldName)
	})

	t.Run("extra field rejected in strict mode", func(t *testing.T) {
		extra := `{"character_name": "Luna", "character_level": 250, "new_field": 1}`
		resp := makeResponse[testCharacter]("application/json", extra, Model(testCharacterSchema), true, nil)

		_, err := resp.Parse()
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.NotNil(t, valErr.Response)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Len(t, schemaErr.Issues, 1)
		assert.Equal(t, "new_field", schemaErr.Issues[0].Path)
	})

	t.Run("extra field preserved in lenient mode", func(t *testing.T) {
		extra := `{"character_name": "Luna", "character_level": 250, "new_field": "kept"}`
		resp := makeResponse[testCharacter]("application/json", extra, Model(testCharacterSchema), false, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Equal(t, "Luna", parsed.CharacterName)

		v, ok := parsed.Extra("new_field")
		require.True(t, ok)
		assert.Equal(t, "kept", v)
	})

	t.Run("null body yields zero value regardless of shape", func(t *testing.T) {
		resp := makeResponse[testCharacter]("application/json", `null`, Model(testCharacterSchema), true, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Zero(t, parsed.CharacterName)
		assert.Zero(t, parsed.CharacterLevel)
	})
}

func TestParseContentTypeMismatch(t *testing.T) {
	t.Run("strict mode fails with body and media type attached", func(t *testing.T) {
		body := "<html>Service Unavailable</html>"
		resp := makeResponse[testCharacter]("text/html", body, Model(testCharacterSchema), true, nil)

		_, err := resp.Parse()
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, body, valErr.BodyText())
		assert.Contains(t, valErr.Error(), "text/html")
		assert.Contains(t, valErr.Error(), "application/json")
	})

	t.Run("mislabeled JSON still parses into a model", func(t *testing.T) {
		body := `{"character_name": "Luna", "character_level": 250}`
		resp := makeResponse[testCharacter]("text/plain", body, Model(testCharacterSchema), true, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Equal(t, "Luna", parsed.CharacterName)
	})

	t.Run("lenient mode degrades to body text", func(t *testing.T) {
		resp := makeResponse[string]("text/html", "<html>oops</html>", Model(testCharacterSchema), false, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Equal(t, "<html>oops</html>", parsed)
	})
}

func TestParseMalformedJSON(t *testing.T) {
	// Malformed JSON under a JSON content type surfaces directly, not as
	// a validation error.
	resp := makeResponse[testCharacter]("application/json", `{"character_name": `, Model(testCharacterSchema), true, nil)

	_, err := resp.Parse()
	require.Error(t, err)
	var valErr *ValidationError
	assert.False(t, errors.As(err, &valErr))
	assert.Contains(t, err.Error(), "decode response body")
}

func TestParsePassthrough(t *testing.T) {
	resp := makeResponse[any]("application/json", `{"dynamic": [1, 2, 3]}`, Any(), true, nil)

	parsed, err := resp.Parse()
	require.NoError(t, err)
	obj, ok := parsed.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, obj["dynamic"])
}

func TestParseInvalidShape(t *testing.T) {
	tests := []struct {
		name  string
		shape *Shape
	}{
		{"nil shape", nil},
		{"scalar string target", String()},
		{"scalar int target", Int()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeResponse[any]("application/json", `{}`, tt.shape, true, nil)

			_, err := resp.Parse()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestParseSequenceAndMapping(t *testing.T) {
	t.Run("sequence of models", func(t *testing.T) {
		body := `[{"character_name": "Luna", "character_level": 250}, {"character_name": "Sol", "character_level": 12}]`
		resp := makeResponse[[]testCharacter]("application/json", body, SequenceOf(Model(testCharacterSchema)), true, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		require.Len(t, parsed, 2)
		assert.Equal(t, "Sol", parsed[1].CharacterName)
	})

	t.Run("mapping of ints", func(t *testing.T) {
		resp := makeResponse[map[string]int]("application/json", `{"scania": 3, "bera": 7}`, MappingOf(Int()), true, nil)

		parsed, err := resp.Parse()
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"scania": 3, "bera": 7}, parsed)
	})

	t.Run("sequence issue paths carry indexes", func(t *testing.T) {
		body := `[{"character_name": "Luna", "character_level": 250}, {"character_name": "Sol", "character_level": "high"}]`
		resp := makeResponse[[]testCharacter]("application/json", body, SequenceOf(Model(testCharacterSchema)), true, nil)

		_, err := resp.Parse()
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Len(t, schemaErr.Issues, 1)
		assert.Equal(t, "[1].character_level", schemaErr.Issues[0].Path)
	})
}

func TestParseCustomBuilder(t *testing.T) {
	var calls int
	schema := &ModelSchema{
		Name: "test.Built",
		Build: func(resp *http.Response, data any) (any, error) {
			calls++
			obj := data.(map[string]any)
			// The builder owns validation entirely; rename a field to
			// prove generic construction is bypassed.
			return map[string]any{"character_name": obj["nickname"], "character_level": float64(1)}, nil
		},
	}

	resp := makeResponse[testCharacter]("application/json", `{"nickname": "Luna"}`, Model(schema), true, nil)

	parsed, err := resp.Parse()
	require.NoError(t, err)
	assert.Equal(t, "Luna", parsed.CharacterName)
	assert.Equal(t, 1, calls)
}

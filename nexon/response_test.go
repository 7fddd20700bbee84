package nexon

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseParseCaching(t *testing.T) {
	t.Run("parsed value is cached and identity-equal", func(t *testing.T) {
		body := `{"character_name": "Luna", "character_level": 250}`
		resp := makeResponse[*testCharacter]("application/json", body, Model(testCharacterSchema), true, nil)

		first, err := resp.Parse()
		require.NoError(t, err)
		second, err := resp.Parse()
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("parser runs exactly once", func(t *testing.T) {
		var builds int
		schema := &ModelSchema{
			Name: "test.Counted",
			Build: func(resp *http.Response, data any) (any, error) {
				builds++
				return data, nil
			},
		}

		resp := makeResponse[map[string]any]("application/json", `{"n": 1}`, Model(schema), true, nil)

		for i := 0; i < 3; i++ {
			_, err := resp.Parse()
			require.NoError(t, err)
		}
		assert.Equal(t, 1, builds)
	})
}

func TestResponsePostParseHook(t *testing.T) {
	var calls int
	opts := &RequestOptions{
		PostParse: func(parsed any) (any, error) {
			calls++
			char := parsed.(testCharacter)
			// The hook sees the fully-typed object, not raw JSON.
			char.CharacterName = char.CharacterName + "!"
			return char, nil
		},
	}

	body := `{"character_name": "Luna", "character_level": 250}`
	resp := makeResponse[testCharacter]("application/json", body, Model(testCharacterSchema), true, opts)

	first, err := resp.Parse()
	require.NoError(t, err)
	assert.Equal(t, "Luna!", first.CharacterName)

	// The cached value is the hook's output and the hook never reruns.
	second, err := resp.Parse()
	require.NoError(t, err)
	assert.Equal(t, "Luna!", second.CharacterName)
	assert.Equal(t, 1, calls)
}

func TestResponseAccessors(t *testing.T) {
	resp := makeResponse[any]("application/json", `{"ok": true}`, Any(), false, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.Equal(t, http.MethodGet, resp.Method())
	assert.Equal(t, "/maplestory/v1/character/basic", resp.URL().Path)
	assert.Equal(t, `{"ok": true}`, resp.Text())
	assert.Equal(t, []byte(`{"ok": true}`), resp.Body())
	assert.Equal(t, "HTTP/1.1", resp.Proto())
	assert.Equal(t, 25*time.Millisecond, resp.Elapsed())
	assert.NotNil(t, resp.HTTPResponse())
	assert.NotNil(t, resp.Request())
}

func TestResponseString(t *testing.T) {
	resp := makeResponse[testCharacter]("application/json", `{}`, Model(testCharacterSchema), true, nil)

	repr := resp.String()
	assert.Contains(t, repr, "200 OK")
	assert.Contains(t, repr, "model(test.Character)")
}

func TestResponseHookError(t *testing.T) {
	opts := &RequestOptions{
		PostParse: func(parsed any) (any, error) {
			return nil, assert.AnError
		},
	}
	resp := makeResponse[any]("application/json", `{}`, Any(), false, opts)

	_, err := resp.Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

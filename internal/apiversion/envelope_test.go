package apiversion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"division exacta", 100, 20, 5},
		{"resto suma una pagina", 101, 20, 6},
		{"menos que una pagina", 7, 20, 1},
		{"sin resultados", 0, 20, 0},
		{"per_page cero", 50, 0, 0},
		{"per_page negativo", 50, -5, 0},
		{"una por pagina", 3, 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPages(tc.total, tc.perPage))
		})
	}
}

func TestEnvelopeJSON(t *testing.T) {
	t.Run("envelope simple con las claves literales", func(t *testing.T) {
		raw, err := json.Marshal(NewEnvelope(map[string]any{"id": "1"}, "v1"))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, true, got["success"])
		assert.Equal(t, "v1", got["version"])
		assert.Equal(t, map[string]any{"id": "1"}, got["data"])
		_, hasErrors := got["errors"]
		assert.False(t, hasErrors)
		_, hasWarnings := got["warnings"]
		assert.False(t, hasWarnings)
	})

	t.Run("envelope de lista con paginacion", func(t *testing.T) {
		items := []map[string]any{{"id": "1"}, {"id": "2"}}
		raw, err := json.Marshal(NewListEnvelope(items, "v2", 41, 2, 20))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, true, got["success"])
		assert.Equal(t, "v2", got["version"])
		assert.Equal(t, float64(41), got["total"])
		assert.Equal(t, float64(2), got["page"])
		assert.Equal(t, float64(20), got["per_page"])
		assert.Equal(t, float64(3), got["total_pages"])
	})

	t.Run("envelope de error sin data", func(t *testing.T) {
		env := NewErrorEnvelope([]FieldError{{Field: "name", Message: "required field is missing"}}, "v1")
		raw, err := json.Marshal(env)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, false, got["success"])
		_, hasData := got["data"]
		assert.False(t, hasData)

		errs, ok := got["errors"].([]any)
		require.True(t, ok)
		require.Len(t, errs, 1)
		first, ok := errs[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "name", first["field"])
		assert.Equal(t, "required field is missing", first["message"])
	})

	t.Run("warnings viajan solo cuando existen", func(t *testing.T) {
		env := NewEnvelope(map[string]any{"id": "1"}, "v2")
		env.Warnings = append(env.Warnings, "payload validated against fallback version v1")
		raw, err := json.Marshal(env)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		warnings, ok := got["warnings"].([]any)
		require.True(t, ok)
		assert.Equal(t, "payload validated against fallback version v1", warnings[0])
	})
}

package apiversion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsApply(t *testing.T) {
	m := NewMigrations()
	m.Register("v1", "v2", RenameField("notes", "bio"))

	t.Run("clave exacta aplica la migracion", func(t *testing.T) {
		out := m.Apply(map[string]any{"notes": "tranquilo"}, "v1", "v2")
		assert.Equal(t, "tranquilo", out["bio"])
		_, has := out["notes"]
		assert.False(t, has)
	})

	t.Run("clave ausente degrada a identidad", func(t *testing.T) {
		in := map[string]any{"notes": "tranquilo"}
		out := m.Apply(in, "v2", "v3")
		assert.Equal(t, in, out)
	})

	t.Run("no hay encadenamiento automatico", func(t *testing.T) {
		m.Register("v2", "v3", SetDefault("category", "general"))
		out := m.Apply(map[string]any{"notes": "x"}, "v1", "v3")
		// v1→v3 no esta registrada aunque existan v1→v2 y v2→v3
		assert.Equal(t, map[string]any{"notes": "x"}, out)
	})

	t.Run("lookup reporta presencia", func(t *testing.T) {
		_, ok := m.Lookup("v1", "v2")
		assert.True(t, ok)
		_, ok = m.Lookup("v9", "v1")
		assert.False(t, ok)
	})
}

func TestMigrationPurity(t *testing.T) {
	in := map[string]any{"notes": "hola", "name": "Buddy"}
	out := RenameField("notes", "bio")(in)

	require.Equal(t, "hola", out["bio"])
	// el mapa de entrada queda intacto
	assert.Equal(t, map[string]any{"notes": "hola", "name": "Buddy"}, in)
}

func TestMigrationFactories(t *testing.T) {
	t.Run("RenameField sin el campo no inventa nada", func(t *testing.T) {
		out := RenameField("notes", "bio")(map[string]any{"name": "Buddy"})
		assert.Equal(t, map[string]any{"name": "Buddy"}, out)
	})

	t.Run("RenameFieldWith transforma el valor", func(t *testing.T) {
		upper := RenameFieldWith("code", "code_upper", func(v any) any {
			s, _ := v.(string)
			return strings.ToUpper(s)
		})
		out := upper(map[string]any{"code": "ab-12"})
		assert.Equal(t, "AB-12", out["code_upper"])
	})

	t.Run("SetDefault solo toca ausentes o null", func(t *testing.T) {
		inject := SetDefault("timezone", "UTC")

		out := inject(map[string]any{"name": "Centro"})
		assert.Equal(t, "UTC", out["timezone"])

		out = inject(map[string]any{"timezone": nil})
		assert.Equal(t, "UTC", out["timezone"])

		out = inject(map[string]any{"timezone": "America/Lima"})
		assert.Equal(t, "America/Lima", out["timezone"])
	})

	t.Run("DropField elimina el campo", func(t *testing.T) {
		out := DropField("internal_flag")(map[string]any{"internal_flag": true, "name": "x"})
		assert.Equal(t, map[string]any{"name": "x"}, out)
	})

	t.Run("Compose encadena en orden", func(t *testing.T) {
		fn := Compose(
			RenameField("notes", "bio"),
			SetDefault("category", "general"),
			DropField("legacy"),
		)
		out := fn(map[string]any{"notes": "ok", "legacy": 1})
		assert.Equal(t, map[string]any{"bio": "ok", "category": "general"}, out)
	})

	t.Run("migracion sobre nil trabaja con mapa nuevo", func(t *testing.T) {
		out := SetDefault("timezone", "UTC")(nil)
		assert.Equal(t, map[string]any{"timezone": "UTC"}, out)
	})
}

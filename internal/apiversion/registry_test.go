package apiversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalContract(t *testing.T, version, resource string) *Contract {
	t.Helper()
	c, err := NewContract(ContractSpec{
		Version:  version,
		Resource: resource,
		Fields:   []FieldSpec{{Name: "name", Type: TypeString, Required: true}},
	})
	require.NoError(t, err)
	return c
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	t.Run("lookup sobre registro vacio no falla", func(t *testing.T) {
		c, ok := reg.Lookup("v1", "pets")
		assert.False(t, ok)
		assert.Nil(t, c)
	})

	t.Run("register y lookup por version y recurso", func(t *testing.T) {
		v1 := minimalContract(t, "v1", "pets")
		v2 := minimalContract(t, "v2", "pets")
		reg.Register(v1)
		reg.Register(v2)

		got, ok := reg.Lookup("v1", "pets")
		require.True(t, ok)
		assert.Same(t, v1, got)

		got, ok = reg.Lookup("v2", "pets")
		require.True(t, ok)
		assert.Same(t, v2, got)
	})

	t.Run("re-registrar reemplaza sin aviso", func(t *testing.T) {
		replacement := minimalContract(t, "v1", "pets")
		reg.Register(replacement)
		got, ok := reg.Lookup("v1", "pets")
		require.True(t, ok)
		assert.Same(t, replacement, got)
	})

	t.Run("resources y versions listan ordenado", func(t *testing.T) {
		reg.Register(minimalContract(t, "v1", "clinics"))
		reg.Register(minimalContract(t, "v1", "appointments"))

		assert.Equal(t, []string{"appointments", "clinics", "pets"}, reg.Resources("v1"))
		assert.Equal(t, []string{"v1", "v2"}, reg.Versions("pets"))
		assert.Empty(t, reg.Resources("v9"))
	})
}

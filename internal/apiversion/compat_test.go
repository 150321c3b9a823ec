package apiversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compatContract(t *testing.T, version string, fields ...FieldSpec) *Contract {
	t.Helper()
	c, err := NewContract(ContractSpec{Version: version, Resource: "pets", Fields: fields})
	require.NoError(t, err)
	return c
}

func TestCompareContracts(t *testing.T) {
	t.Run("particion comun agregado removido", func(t *testing.T) {
		older := compatContract(t, "v1",
			FieldSpec{Name: "a", Type: TypeString},
			FieldSpec{Name: "b", Type: TypeString},
			FieldSpec{Name: "c", Type: TypeString},
		)
		newer := compatContract(t, "v2",
			FieldSpec{Name: "a", Type: TypeString},
			FieldSpec{Name: "b", Type: TypeString},
			FieldSpec{Name: "d", Type: TypeString, Required: true},
		)

		r := CompareContracts(older, newer)
		assert.Equal(t, "pets", r.Resource)
		assert.Equal(t, "v1", r.From)
		assert.Equal(t, "v2", r.To)
		assert.Equal(t, []string{"a", "b"}, r.Common)
		assert.Equal(t, []string{"d"}, r.Added)
		assert.Equal(t, []string{"c"}, r.Removed)
		assert.Equal(t, []string{"c"}, r.Breaking)
		assert.Equal(t, []string{"d"}, r.Warnings)
		assert.Empty(t, r.NonBreaking)
		// |common| / |union| = 2 / 4
		assert.InDelta(t, 0.5, r.Score, 1e-9)
	})

	t.Run("agregado opcional o con default es non-breaking", func(t *testing.T) {
		older := compatContract(t, "v1", FieldSpec{Name: "a", Type: TypeString})
		newer := compatContract(t, "v2",
			FieldSpec{Name: "a", Type: TypeString},
			FieldSpec{Name: "opt", Type: TypeString},
			FieldSpec{Name: "con_default", Type: TypeString, Required: true, Default: "x"},
		)

		r := CompareContracts(older, newer)
		assert.Equal(t, []string{"con_default", "opt"}, r.NonBreaking)
		assert.Empty(t, r.Warnings)
		assert.Empty(t, r.Breaking)
	})

	t.Run("contratos identicos puntuan 1", func(t *testing.T) {
		older := compatContract(t, "v1", FieldSpec{Name: "a", Type: TypeString})
		newer := compatContract(t, "v2", FieldSpec{Name: "a", Type: TypeString})

		r := CompareContracts(older, newer)
		assert.Empty(t, r.Added)
		assert.Empty(t, r.Removed)
		assert.InDelta(t, 1.0, r.Score, 1e-9)
	})

	t.Run("contratos sin campos puntuan 1 por convencion", func(t *testing.T) {
		r := CompareContracts(compatContract(t, "v1"), compatContract(t, "v2"))
		assert.InDelta(t, 1.0, r.Score, 1e-9)
	})

	t.Run("sin solapamiento puntua 0", func(t *testing.T) {
		older := compatContract(t, "v1", FieldSpec{Name: "a", Type: TypeString})
		newer := compatContract(t, "v2", FieldSpec{Name: "z", Type: TypeString})

		r := CompareContracts(older, newer)
		assert.InDelta(t, 0.0, r.Score, 1e-9)
	})

	t.Run("el reporte serializa listas vacias como arrays", func(t *testing.T) {
		r := CompareContracts(compatContract(t, "v1"), compatContract(t, "v2"))
		assert.NotNil(t, r.Common)
		assert.NotNil(t, r.Added)
		assert.NotNil(t, r.Removed)
		assert.NotNil(t, r.Breaking)
		assert.NotNil(t, r.Warnings)
		assert.NotNil(t, r.NonBreaking)
	})
}

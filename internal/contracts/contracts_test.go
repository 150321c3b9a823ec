package contracts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetd/internal/apiversion"
)

const (
	petID    = "3b241101-e2bb-4255-8caf-4136c566a962"
	vetID    = "9f8b2c44-1d35-4f6a-9c1d-2a7b8e3f5d10"
	clinicID = "c0a80121-7ac0-4e1c-9b2d-6f3e8a1b4c5d"
)

func TestBuildRegistersEverything(t *testing.T) {
	b := Build(Options{})
	for _, version := range Versions {
		for _, resource := range Resources {
			_, ok := b.Registry.Lookup(version, resource)
			assert.True(t, ok, "%s/%s sin registrar", version, resource)
		}
	}
}

func TestPetsV1Examples(t *testing.T) {
	b := Build(Options{})
	c, ok := b.Registry.Lookup("v1", ResourcePets)
	require.True(t, ok)

	t.Run("nombre vacio reporta error de campo", func(t *testing.T) {
		res := c.Validate(map[string]any{"name": "", "species": "dog"})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "name", res.Errors[0].Field)
	})

	t.Run("payload minimo valido", func(t *testing.T) {
		res := c.Validate(map[string]any{"name": "Buddy", "species": "dog"})
		require.True(t, res.Valid)
		assert.Equal(t, "Buddy", res.Data["name"])
		assert.Equal(t, "dog", res.Data["species"])
	})

	t.Run("especie se normaliza a minusculas", func(t *testing.T) {
		res := c.Validate(map[string]any{"name": "Misha", "species": "CAT"})
		require.True(t, res.Valid)
		assert.Equal(t, "cat", res.Data["species"])
	})

	t.Run("nacimiento futuro se rechaza", func(t *testing.T) {
		res := c.Validate(map[string]any{"name": "Buddy", "species": "dog", "birth_date": "2999-01-01"})
		require.False(t, res.Valid)
		assert.Equal(t, "birth_date", res.Errors[0].Field)
	})
}

func TestPetsFallbackRenamesNotes(t *testing.T) {
	b := Build(Options{})
	fb := b.FallbackFor(ResourcePets)

	// payload v1: trae notes, que v2 no conoce (v2 usa bio)
	res, outcome, err := fb.Validate(map[string]any{
		"name":    "Buddy",
		"species": "dog",
		"notes":   "alérgico a la penicilina",
	}, ResourcePets, "v2", "v1")
	require.NoError(t, err)

	// notes es desconocido para v2 pero v2 pets no es strict, así que lo
	// descarta y valida: el primario gana sin warnings y sin notes.
	assert.Equal(t, apiversion.OutcomePrimary, outcome)
	require.True(t, res.Valid)
	_, hasNotes := res.Data["notes"]
	assert.False(t, hasNotes)
}

func TestPetsMigrationsBothWays(t *testing.T) {
	b := Build(Options{})

	up, ok := b.Migrations[ResourcePets].Lookup("v1", "v2")
	require.True(t, ok)
	out := up(map[string]any{"notes": "tranquilo"})
	assert.Equal(t, "tranquilo", out["bio"])

	down, ok := b.Migrations[ResourcePets].Lookup("v2", "v1")
	require.True(t, ok)
	out = down(map[string]any{"bio": "tranquilo"})
	assert.Equal(t, "tranquilo", out["notes"])
}

func TestClinicsFallbackInjectsTimezone(t *testing.T) {
	b := Build(Options{})
	fb := b.FallbackFor(ResourceClinics)

	res, outcome, err := fb.Validate(map[string]any{
		"name": "Clínica Central",
		"city": "Lima",
	}, ResourceClinics, "v2", "v1")
	require.NoError(t, err)

	assert.Equal(t, apiversion.OutcomeMigrated, outcome)
	require.True(t, res.Valid)
	assert.Equal(t, "UTC", res.Data["timezone"])
	assert.Equal(t, false, res.Data["emergency"])
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "migrated to v2")
}

func TestAppointmentsClinicDefault(t *testing.T) {
	payload := map[string]any{
		"pet_id":     petID,
		"vet_id":     vetID,
		"date":       "2999-06-01",
		"start_time": "09:00",
		"end_time":   "09:30",
	}

	t.Run("sin clinica por defecto el turno queda en forma v1", func(t *testing.T) {
		b := Build(Options{})
		res, outcome, err := b.FallbackFor(ResourceAppointments).
			Validate(payload, ResourceAppointments, "v2", "v1")
		require.NoError(t, err)

		assert.Equal(t, apiversion.OutcomeFallback, outcome)
		require.True(t, res.Valid)
		_, has := res.Data["clinic_id"]
		assert.False(t, has)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "fallback version v1")
	})

	t.Run("con clinica por defecto el turno migra a v2", func(t *testing.T) {
		b := Build(Options{DefaultClinicID: clinicID})
		res, outcome, err := b.FallbackFor(ResourceAppointments).
			Validate(payload, ResourceAppointments, "v2", "v1")
		require.NoError(t, err)

		assert.Equal(t, apiversion.OutcomeMigrated, outcome)
		require.True(t, res.Valid)
		assert.Equal(t, clinicID, res.Data["clinic_id"])
		assert.Equal(t, "scheduled", res.Data["status"])
	})
}

func TestMessagesLongBodyFallsBack(t *testing.T) {
	b := Build(Options{})
	longBody := strings.Repeat("x", 2500)

	res, outcome, err := b.FallbackFor(ResourceMessages).Validate(map[string]any{
		"sender_id":    petID,
		"recipient_id": vetID,
		"body":         longBody,
	}, ResourceMessages, "v2", "v1")
	require.NoError(t, err)

	// 2500 > 2000 revienta v2; v1 banca hasta 4000 y no hay migración
	assert.Equal(t, apiversion.OutcomeFallback, outcome)
	require.True(t, res.Valid)
	assert.Equal(t, longBody, res.Data["body"])
}

func TestVeterinariansStrictV2(t *testing.T) {
	b := Build(Options{})

	payload := map[string]any{
		"first_name":     "Ana",
		"last_name":      "Quispe",
		"license_number": "CMV-12345",
		"old_field":      "ya no existe",
	}

	t.Run("v2 directo rechaza el campo desconocido", func(t *testing.T) {
		c, ok := b.Registry.Lookup("v2", ResourceVeterinarians)
		require.True(t, ok)
		res := c.Validate(payload)
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "old_field", res.Errors[0].Field)
		assert.Equal(t, "unknown field", res.Errors[0].Message)
	})

	t.Run("con fallback el payload viejo entra en forma v1", func(t *testing.T) {
		res, outcome, err := b.FallbackFor(ResourceVeterinarians).
			Validate(payload, ResourceVeterinarians, "v2", "v1")
		require.NoError(t, err)

		assert.Equal(t, apiversion.OutcomeFallback, outcome)
		require.True(t, res.Valid)
		_, has := res.Data["old_field"]
		assert.False(t, has)
	})
}

func TestCompatReports(t *testing.T) {
	b := Build(Options{})

	t.Run("pets v1 a v2", func(t *testing.T) {
		older, _ := b.Registry.Lookup("v1", ResourcePets)
		newer, _ := b.Registry.Lookup("v2", ResourcePets)
		r := apiversion.CompareContracts(older, newer)

		assert.Equal(t, []string{"notes"}, r.Removed)
		assert.Equal(t, []string{"notes"}, r.Breaking)
		assert.Contains(t, r.Added, "bio")
		assert.Contains(t, r.Added, "weight_kg")
		assert.Empty(t, r.Warnings)
		assert.Less(t, r.Score, 1.0)
	})

	t.Run("clinics v1 a v2 marca timezone como warning", func(t *testing.T) {
		older, _ := b.Registry.Lookup("v1", ResourceClinics)
		newer, _ := b.Registry.Lookup("v2", ResourceClinics)
		r := apiversion.CompareContracts(older, newer)

		assert.Empty(t, r.Removed)
		assert.Equal(t, []string{"timezone"}, r.Warnings)
		assert.Equal(t, []string{"emergency"}, r.NonBreaking)
	})

	t.Run("appointments v1 a v2 marca clinic_id como warning", func(t *testing.T) {
		older, _ := b.Registry.Lookup("v1", ResourceAppointments)
		newer, _ := b.Registry.Lookup("v2", ResourceAppointments)
		r := apiversion.CompareContracts(older, newer)

		assert.Equal(t, []string{"clinic_id"}, r.Warnings)
	})
}

func TestFallbackForUnknownResourceStillWorks(t *testing.T) {
	b := Build(Options{})
	fb := b.FallbackFor("ghosts")
	_, _, err := fb.Validate(map[string]any{}, "ghosts", "v2", "v1")
	assert.ErrorIs(t, err, apiversion.ErrContractNotRegistered)
}

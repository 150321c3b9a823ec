package apiversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSONSchema(t *testing.T) {
	c := MustContract(ContractSpec{
		Version:  "v2",
		Resource: "pets",
		Strict:   true,
		Fields: []FieldSpec{
			{Name: "name", Type: TypeString, Required: true, MinLen: Int(1), MaxLen: Int(60)},
			{Name: "species", Type: TypeString, Required: true, Enum: []string{"dog", "cat"}, Lowercase: true},
			{Name: "birth_date", Type: TypeDate},
			{Name: "visit_time", Type: TypeTime},
			{Name: "owner_id", Type: TypeUUID},
			{Name: "owner_email", Type: TypeEmail},
			{Name: "weight_kg", Type: TypeNumber, Min: Float(0), Max: Float(500)},
			{Name: "visits", Type: TypeInt},
			{Name: "vaccinated", Type: TypeBool},
			{Name: "microchip", Type: TypeString, Pattern: "^[0-9A-Za-z-]{4,32}$"},
			{Name: "temperament", Type: TypeString, Required: true, Default: "unknown", Enum: []string{"calm", "unknown"}},
		},
	})

	doc := ExportJSONSchema(c)

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])
	assert.Equal(t, "pets (v2)", doc["title"])
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)

	name, _ := props["name"].(map[string]any)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, 1, name["minLength"])
	assert.Equal(t, 60, name["maxLength"])

	species, _ := props["species"].(map[string]any)
	assert.Equal(t, []any{"dog", "cat"}, species["enum"])

	birth, _ := props["birth_date"].(map[string]any)
	assert.Equal(t, "date", birth["format"])

	visit, _ := props["visit_time"].(map[string]any)
	assert.Equal(t, timePattern, visit["pattern"])

	owner, _ := props["owner_id"].(map[string]any)
	assert.Equal(t, "uuid", owner["format"])

	email, _ := props["owner_email"].(map[string]any)
	assert.Equal(t, "email", email["format"])

	weight, _ := props["weight_kg"].(map[string]any)
	assert.Equal(t, "number", weight["type"])
	assert.Equal(t, float64(0), weight["minimum"])
	assert.Equal(t, float64(500), weight["maximum"])

	visits, _ := props["visits"].(map[string]any)
	assert.Equal(t, "integer", visits["type"])

	vacc, _ := props["vaccinated"].(map[string]any)
	assert.Equal(t, "boolean", vacc["type"])

	chip, _ := props["microchip"].(map[string]any)
	assert.Equal(t, "^[0-9A-Za-z-]{4,32}$", chip["pattern"])

	temp, _ := props["temperament"].(map[string]any)
	assert.Equal(t, "unknown", temp["default"])

	// required con default no se exporta como required
	required, ok := doc["required"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "species"}, required)
}

func TestExportOmitsRequiredWhenEmpty(t *testing.T) {
	c := MustContract(ContractSpec{
		Version:  "v1",
		Resource: "notes",
		Fields:   []FieldSpec{{Name: "body", Type: TypeString}},
	})
	doc := ExportJSONSchema(c)
	_, has := doc["required"]
	assert.False(t, has)
	assert.Equal(t, true, doc["additionalProperties"])
}

func TestCompileSchema(t *testing.T) {
	t.Run("el export de un contrato real compila", func(t *testing.T) {
		c := petContract(t)
		assert.NoError(t, CompileSchema(ExportJSONSchema(c)))
	})

	t.Run("documento invalido no compila", func(t *testing.T) {
		bad := map[string]any{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type":    "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "pattern": "(["},
			},
		}
		assert.Error(t, CompileSchema(bad))
	})
}

package v2

import (
	"time"

	"vetd/internal/apiversion"
)

// Pets declara el contrato v2 de mascotas. Cambios contra v1: notes pasa
// a llamarse bio (hay migración en ambos sentidos), y entran weight_kg,
// microchip, deceased_date y temperament.
func Pets() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "pets",
		Fields: []apiversion.FieldSpec{
			{Name: "name", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(60)},
			{Name: "species", Type: apiversion.TypeString, Required: true, Lowercase: true,
				Enum: []string{"dog", "cat", "bird", "rabbit", "other"}},
			{Name: "breed", Type: apiversion.TypeString, MaxLen: apiversion.Int(60)},
			{Name: "sex", Type: apiversion.TypeString, Lowercase: true,
				Enum: []string{"male", "female", "unknown"}},
			{Name: "birth_date", Type: apiversion.TypeDate},
			{Name: "bio", Type: apiversion.TypeString, MaxLen: apiversion.Int(2000)},
			{Name: "weight_kg", Type: apiversion.TypeNumber, Min: apiversion.Float(0), Max: apiversion.Float(500)},
			{Name: "microchip", Type: apiversion.TypeString, Pattern: `^[0-9A-Za-z-]{4,32}$`},
			{Name: "deceased_date", Type: apiversion.TypeDate},
			{Name: "temperament", Type: apiversion.TypeString, Lowercase: true, Default: "unknown",
				Enum: []string{"calm", "playful", "nervous", "aggressive", "unknown"}},
		},
		Rules: []apiversion.CrossFieldRule{
			apiversion.DateNotFuture("birth_date"),
			apiversion.DateNotFuture("deceased_date"),
			apiversion.DateNotBefore("deceased_date", "birth_date"),
		},
		Computed: []apiversion.ComputedField{
			{Name: "age_years", Compute: petAgeYears},
		},
	})
}

// petAgeYears deriva la edad en años desde birth_date; nil si no hay
// fecha utilizable.
func petAgeYears(data map[string]any) any {
	s, ok := data["birth_date"].(string)
	if !ok {
		return nil
	}
	bd, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	years := int(time.Since(bd).Hours() / (24 * 365.25))
	if years < 0 {
		return nil
	}
	return years
}

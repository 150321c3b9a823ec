package v1

import "vetd/internal/apiversion"

// Pets declara el contrato v1 de mascotas.
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
			{Name: "notes", Type: apiversion.TypeString, MaxLen: apiversion.Int(2000)},
		},
		Rules: []apiversion.CrossFieldRule{
			apiversion.DateNotFuture("birth_date"),
		},
	})
}

package v1

import "vetd/internal/apiversion"

// Clinics declara el contrato v1 de clínicas.
func Clinics() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "clinics",
		Fields: []apiversion.FieldSpec{
			{Name: "name", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(120)},
			{Name: "city", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(120)},
			{Name: "phone", Type: apiversion.TypeString, Pattern: `^\+?[0-9 ()-]{6,20}$`},
			{Name: "email", Type: apiversion.TypeEmail},
		},
	})
}

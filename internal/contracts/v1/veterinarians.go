package v1

import "vetd/internal/apiversion"

// Veterinarians declara el contrato v1 de veterinarios. No es strict:
// los clientes viejos mandan campos extra y acá se toleran.
func Veterinarians() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "veterinarians",
		Fields: []apiversion.FieldSpec{
			{Name: "first_name", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(80)},
			{Name: "last_name", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(80)},
			{Name: "specialty", Type: apiversion.TypeString, Lowercase: true,
				Enum: []string{"general", "surgery", "dermatology", "cardiology", "dentistry"}},
			{Name: "license_number", Type: apiversion.TypeString, Required: true, Pattern: `^[A-Za-z]{2,4}-[0-9]{3,8}$`},
			{Name: "email", Type: apiversion.TypeEmail},
		},
	})
}

package v2

import "vetd/internal/apiversion"

// Veterinarians declara el contrato v2 de veterinarios. Es el único
// contrato strict del API: acá los campos desconocidos se rechazan con
// un error por clave, mientras v1 los sigue descartando en silencio.
func Veterinarians() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "veterinarians",
		Strict:   true,
		Fields: []apiversion.FieldSpec{
			{Name: "first_name", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(80)},
			{Name: "last_name", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(80)},
			{Name: "specialty", Type: apiversion.TypeString, Lowercase: true,
				Enum: []string{"general", "surgery", "dermatology", "cardiology", "dentistry"}},
			{Name: "license_number", Type: apiversion.TypeString, Required: true, Pattern: `^[A-Za-z]{2,4}-[0-9]{3,8}$`},
			{Name: "email", Type: apiversion.TypeEmail},
			{Name: "years_experience", Type: apiversion.TypeInt, Min: apiversion.Float(0), Max: apiversion.Float(70)},
			{Name: "clinic_id", Type: apiversion.TypeUUID},
		},
	})
}

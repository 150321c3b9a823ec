package v2

import "vetd/internal/apiversion"

// Clinics declara el contrato v2 de clínicas. timezone entra como
// required sin default a propósito: es el caso "breaking-warning" del
// reporte de compatibilidad, y la migración v1→v2 lo salva inyectando
// UTC.
func Clinics() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "clinics",
		Fields: []apiversion.FieldSpec{
			{Name: "name", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(120)},
			{Name: "city", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(120)},
			{Name: "phone", Type: apiversion.TypeString, Pattern: `^\+?[0-9 ()-]{6,20}$`},
			{Name: "email", Type: apiversion.TypeEmail},
			{Name: "timezone", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(64)},
			{Name: "emergency", Type: apiversion.TypeBool, Default: false},
		},
	})
}

package v2

import "vetd/internal/apiversion"

// Messages declara el contrato v2 de mensajes. category y read entran
// con default, así que un payload v1 corto valida directo contra v2; el
// límite de body baja de 4000 a 2000, y los cuerpos largos viejos caen
// al fallback v1 sin migración.
func Messages() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "messages",
		Fields: []apiversion.FieldSpec{
			{Name: "sender_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "recipient_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "subject", Type: apiversion.TypeString, MaxLen: apiversion.Int(200)},
			{Name: "body", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(2000)},
			{Name: "priority", Type: apiversion.TypeString, Lowercase: true, Default: "normal",
				Enum: []string{"low", "normal", "high"}},
			{Name: "category", Type: apiversion.TypeString, Lowercase: true, Default: "general",
				Enum: []string{"general", "medical", "billing", "reminder"}},
			{Name: "read", Type: apiversion.TypeBool, Default: false},
		},
	})
}

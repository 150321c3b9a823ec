package v1

import "vetd/internal/apiversion"

// Messages declara el contrato v1 de mensajes entre usuarios y clínica.
func Messages() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "messages",
		Fields: []apiversion.FieldSpec{
			{Name: "sender_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "recipient_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "subject", Type: apiversion.TypeString, MaxLen: apiversion.Int(200)},
			{Name: "body", Type: apiversion.TypeString, Required: true, MinLen: apiversion.Int(1), MaxLen: apiversion.Int(4000)},
			{Name: "priority", Type: apiversion.TypeString, Lowercase: true, Default: "normal",
				Enum: []string{"low", "normal", "high"}},
		},
	})
}

package v1

import "vetd/internal/apiversion"

// Appointments declara el contrato v1 de turnos.
func Appointments() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "appointments",
		Fields: []apiversion.FieldSpec{
			{Name: "pet_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "vet_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "date", Type: apiversion.TypeDate, Required: true},
			{Name: "start_time", Type: apiversion.TypeTime, Required: true},
			{Name: "end_time", Type: apiversion.TypeTime, Required: true},
			{Name: "reason", Type: apiversion.TypeString, MaxLen: apiversion.Int(500)},
		},
		Rules: []apiversion.CrossFieldRule{
			apiversion.DateNotPast("date"),
			apiversion.TimeAfter("end_time", "start_time"),
		},
	})
}

package v2

import (
	"time"

	"vetd/internal/apiversion"
)

// Appointments declara el contrato v2 de turnos. clinic_id entra como
// required sin default: un payload v1 solo se salva si el deployment
// configuró una clínica por defecto (eso arma la migración v1→v2).
func Appointments() *apiversion.Contract {
	return apiversion.MustContract(apiversion.ContractSpec{
		Version:  Version,
		Resource: "appointments",
		Fields: []apiversion.FieldSpec{
			{Name: "pet_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "vet_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "clinic_id", Type: apiversion.TypeUUID, Required: true},
			{Name: "date", Type: apiversion.TypeDate, Required: true},
			{Name: "start_time", Type: apiversion.TypeTime, Required: true},
			{Name: "end_time", Type: apiversion.TypeTime, Required: true},
			{Name: "reason", Type: apiversion.TypeString, MaxLen: apiversion.Int(500)},
			{Name: "status", Type: apiversion.TypeString, Lowercase: true, Default: "scheduled",
				Enum: []string{"scheduled", "confirmed", "completed", "cancelled"}},
			{Name: "reminder_date", Type: apiversion.TypeDate},
		},
		Rules: []apiversion.CrossFieldRule{
			apiversion.DateNotPast("date"),
			apiversion.TimeAfter("end_time", "start_time"),
			apiversion.DateNotAfter("reminder_date", "date"),
		},
		Computed: []apiversion.ComputedField{
			{Name: "duration_minutes", Compute: appointmentDuration},
		},
	})
}

func appointmentDuration(data map[string]any) any {
	start, ok := data["start_time"].(string)
	if !ok {
		return nil
	}
	end, ok := data["end_time"].(string)
	if !ok {
		return nil
	}
	st, err := time.Parse("15:04", start)
	if err != nil {
		return nil
	}
	et, err := time.Parse("15:04", end)
	if err != nil {
		return nil
	}
	if !et.After(st) {
		return nil
	}
	return int(et.Sub(st).Minutes())
}

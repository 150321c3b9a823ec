// Package v1 declara los contratos de la primera versión pública del API.
// Cada recurso enumera sus campos completos; nada se deriva en runtime.
package v1

import "vetd/internal/apiversion"

const Version = "v1"

// All devuelve los contratos v1 de todos los recursos, listos para
// registrar.
func All() []*apiversion.Contract {
	return []*apiversion.Contract{
		Pets(),
		Clinics(),
		Veterinarians(),
		Appointments(),
		Messages(),
	}
}

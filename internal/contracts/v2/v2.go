// Package v2 declara los contratos de la segunda versión del API. La
// evolución respecto de v1 está enumerada campo por campo acá mismo; el
// reporte de compatibilidad se deriva de estas declaraciones, no al revés.
package v2

import "vetd/internal/apiversion"

const Version = "v2"

// All devuelve los contratos v2 de todos los recursos, listos para
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

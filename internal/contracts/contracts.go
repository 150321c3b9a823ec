// Package contracts arma el registro de contratos y las migraciones del
// API completo. Acá vive la verdad de qué versiones existen, qué
// recursos publica cada una y cómo se cruzan los payloads entre ellas.
package contracts

import (
	"vetd/internal/apiversion"
	v1 "vetd/internal/contracts/v1"
	v2 "vetd/internal/contracts/v2"
)

// Nombres de recurso tal como aparecen en las rutas y en los contratos.
const (
	ResourcePets          = "pets"
	ResourceClinics       = "clinics"
	ResourceVeterinarians = "veterinarians"
	ResourceAppointments  = "appointments"
	ResourceMessages      = "messages"
)

// Resources lista los recursos publicados, en el orden de montaje.
var Resources = []string{
	ResourcePets,
	ResourceClinics,
	ResourceVeterinarians,
	ResourceAppointments,
	ResourceMessages,
}

// Versions lista las versiones montadas, de la más vieja a la más nueva.
var Versions = []string{v1.Version, v2.Version}

// Options junta los parámetros de despliegue que condicionan migraciones.
type Options struct {
	// DefaultClinicID habilita la migración v1→v2 de turnos: los payloads
	// v1 no traen clinic_id y la versión nueva lo exige. Vacío = sin
	// migración, los turnos v1 quedan en forma v1 vía fallback.
	DefaultClinicID string
}

// Bundle agrupa el registro de contratos y las migraciones por recurso.
// Cada recurso tiene su propio registro de migraciones con claves
// (from, to) exactas.
type Bundle struct {
	Registry   *apiversion.Registry
	Migrations map[string]*apiversion.Migrations
}

// Build registra todos los contratos v1 y v2 y arma las migraciones.
func Build(opts Options) Bundle {
	reg := apiversion.NewRegistry()
	for _, c := range v1.All() {
		reg.Register(c)
	}
	for _, c := range v2.All() {
		reg.Register(c)
	}

	migs := make(map[string]*apiversion.Migrations, len(Resources))
	for _, r := range Resources {
		migs[r] = apiversion.NewMigrations()
	}

	// pets: notes↔bio en los dos sentidos; ninguna es inversa automática
	// de la otra, cada dirección se registra sola.
	migs[ResourcePets].Register(v1.Version, v2.Version, apiversion.RenameField("notes", "bio"))
	migs[ResourcePets].Register(v2.Version, v1.Version, apiversion.RenameField("bio", "notes"))

	// clinics: v2 exige timezone; los payloads v1 suben con UTC.
	migs[ResourceClinics].Register(v1.Version, v2.Version, apiversion.SetDefault("timezone", "UTC"))

	// appointments: clinic_id es exigible solo si el deployment definió
	// una clínica por defecto.
	if opts.DefaultClinicID != "" {
		migs[ResourceAppointments].Register(v1.Version, v2.Version,
			apiversion.SetDefault("clinic_id", opts.DefaultClinicID))
	}

	// veterinarians y messages migran sin función registrada: el camino
	// de fallback usa la forma vieja tal cual.

	return Bundle{Registry: reg, Migrations: migs}
}

// FallbackFor arma el validador con fallback de un recurso, con sus
// migraciones propias y el registro compartido.
func (b Bundle) FallbackFor(resource string) *apiversion.Fallback {
	m, ok := b.Migrations[resource]
	if !ok {
		m = apiversion.NewMigrations()
	}
	return apiversion.NewFallback(b.Registry, m)
}

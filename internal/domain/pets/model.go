package pets

import "time"

// Especies y sexos válidos viven en los contratos versionados
// (internal/contracts); el dominio guarda los strings ya normalizados.

// Pet representa el perfil de una mascota registrada en la plataforma.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species string // dog, cat, bird, rabbit, other
	Breed   string
	Sex     string // male, female, unknown

	BirthDate    *time.Time
	Bio          string // v1 lo expone como notes
	WeightKg     *float64
	Microchip    string
	DeceasedDate *time.Time
	Temperament  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListFilter acota un listado de mascotas.
type ListFilter struct {
	OwnerUserID string
	Species     string

	Limit  int
	Offset int
}

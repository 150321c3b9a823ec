package clinics

import "time"

// Clinic es un recurso de plataforma: cualquier usuario autenticado la
// ve; el creador queda registrado.
type Clinic struct {
	ID        string
	Name      string
	City      string
	Phone     string
	Email     string
	Timezone  string
	Emergency bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListFilter struct {
	City   string
	Limit  int
	Offset int
}

package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	// List devuelve la página pedida y el total sin paginar.
	List(ctx context.Context, f ListFilter) ([]Appointment, int, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
}

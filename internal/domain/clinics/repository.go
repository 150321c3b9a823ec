package clinics

import "context"

type Repository interface {
	Create(ctx context.Context, c Clinic) error
	GetByID(ctx context.Context, id string) (Clinic, error)
	// List devuelve la página pedida y el total sin paginar.
	List(ctx context.Context, f ListFilter) ([]Clinic, int, error)
	Update(ctx context.Context, c Clinic) error
	Delete(ctx context.Context, id string) error
}

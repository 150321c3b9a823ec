package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// List devuelve la página pedida y el total sin paginar.
	List(ctx context.Context, f ListFilter) ([]Pet, int, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}

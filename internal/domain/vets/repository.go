package vets

import "context"

type Repository interface {
	// Create devuelve ErrConflict si el número de licencia ya existe.
	Create(ctx context.Context, v Veterinarian) error
	GetByID(ctx context.Context, id string) (Veterinarian, error)
	// List devuelve la página pedida y el total sin paginar.
	List(ctx context.Context, f ListFilter) ([]Veterinarian, int, error)
	Update(ctx context.Context, v Veterinarian) error
	Delete(ctx context.Context, id string) error
}

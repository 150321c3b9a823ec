package messages

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m Message) error
	GetByID(ctx context.Context, id string) (Message, error)
	// List devuelve la página pedida y el total sin paginar.
	List(ctx context.Context, f ListFilter) ([]Message, int, error)
	Update(ctx context.Context, m Message) error
	// MarkRead marca el mensaje como leído en el instante dado.
	MarkRead(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

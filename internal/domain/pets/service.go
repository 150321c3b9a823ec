package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service es fino a propósito: la data llega validada y normalizada por
// el contrato de la versión, acá solo quedan guardas residuales, el
// sellado de id/timestamps y la llamada al repositorio.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input junta los campos mutables de una mascota, ya normalizados.
// Create y Update usan la misma forma: un PATCH llega acá con el estado
// completo después del merge con lo persistido.
type Input struct {
	Name    string
	Species string
	Breed   string
	Sex     string

	BirthDate    *time.Time
	Bio          string
	WeightKg     *float64
	Microchip    string
	DeceasedDate *time.Time
	Temperament  string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in Input) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         in.Name,
		Species:      in.Species,
		Breed:        in.Breed,
		Sex:          in.Sex,
		BirthDate:    in.BirthDate,
		Bio:          in.Bio,
		WeightKg:     in.WeightKg,
		Microchip:    in.Microchip,
		DeceasedDate: in.DeceasedDate,
		Temperament:  in.Temperament,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, int, error) {
	return s.repo.List(ctx, f)
}

// Update reemplaza los campos mutables completos; el handler ya hizo el
// merge de PATCH contra el estado actual.
func (s *Service) Update(ctx context.Context, id string, in Input) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	current.Name = in.Name
	current.Species = in.Species
	current.Breed = in.Breed
	current.Sex = in.Sex
	current.BirthDate = in.BirthDate
	current.Bio = in.Bio
	current.WeightKg = in.WeightKg
	current.Microchip = in.Microchip
	current.DeceasedDate = in.DeceasedDate
	current.Temperament = in.Temperament
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

package clinics

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

// Input junta los campos mutables de una clínica, ya normalizados por
// el contrato de la versión.
type Input struct {
	Name      string
	City      string
	Phone     string
	Email     string
	Timezone  string
	Emergency bool
}

func (s *Service) Create(ctx context.Context, createdBy string, in Input) (Clinic, error) {
	if strings.TrimSpace(createdBy) == "" {
		return Clinic{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.City) == "" {
		return Clinic{}, ErrInvalidInput
	}

	now := s.now()
	c := Clinic{
		ID:        uuid.NewString(),
		Name:      in.Name,
		City:      in.City,
		Phone:     in.Phone,
		Email:     in.Email,
		Timezone:  in.Timezone,
		Emergency: in.Emergency,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Clinic{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Clinic, error) {
	if strings.TrimSpace(id) == "" {
		return Clinic{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Clinic, int, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Clinic, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.City) == "" {
		return Clinic{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Clinic{}, err
	}

	current.Name = in.Name
	current.City = in.City
	current.Phone = in.Phone
	current.Email = in.Email
	current.Timezone = in.Timezone
	current.Emergency = in.Emergency
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Clinic{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

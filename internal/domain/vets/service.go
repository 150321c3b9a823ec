package vets

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
	ErrConflict     = errors.New("license number already registered")
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

type Input struct {
	FirstName       string
	LastName        string
	Specialty       string
	LicenseNumber   string
	Email           string
	YearsExperience *int
	ClinicID        string
}

func (s *Service) Create(ctx context.Context, in Input) (Veterinarian, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Veterinarian{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.LicenseNumber) == "" {
		return Veterinarian{}, ErrInvalidInput
	}

	now := s.now()
	v := Veterinarian{
		ID:              uuid.NewString(),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Specialty:       in.Specialty,
		LicenseNumber:   in.LicenseNumber,
		Email:           in.Email,
		YearsExperience: in.YearsExperience,
		ClinicID:        in.ClinicID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Veterinarian{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	if strings.TrimSpace(id) == "" {
		return Veterinarian{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Veterinarian, int, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Veterinarian, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Veterinarian{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.LicenseNumber) == "" {
		return Veterinarian{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Veterinarian{}, err
	}

	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.Specialty = in.Specialty
	current.LicenseNumber = in.LicenseNumber
	current.Email = in.Email
	current.YearsExperience = in.YearsExperience
	current.ClinicID = in.ClinicID
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Veterinarian{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

package vets

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID      map[string]Veterinarian
	byLicense map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Veterinarian{}, byLicense: map[string]string{}}
}

func (r *testRepo) Create(ctx context.Context, v Veterinarian) error {
	if _, ok := r.byLicense[v.LicenseNumber]; ok {
		return ErrConflict
	}
	r.byID[v.ID] = v
	r.byLicense[v.LicenseNumber] = v.ID
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	v, ok := r.byID[id]
	if !ok {
		return Veterinarian{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Veterinarian, int, error) {
	out := make([]Veterinarian, 0)
	for _, v := range r.byID {
		if f.Specialty != "" && v.Specialty != f.Specialty {
			continue
		}
		if f.ClinicID != "" && v.ClinicID != f.ClinicID {
			continue
		}
		out = append(out, v)
	}
	return out, len(out), nil
}

func (r *testRepo) Update(ctx context.Context, v Veterinarian) error {
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_Stamps(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	years := 7
	v, err := svc.Create(context.Background(), Input{
		FirstName:       "Ana",
		LastName:        "Ríos",
		LicenseNumber:   "VET-12345",
		Specialty:       "surgery",
		YearsExperience: &years,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if v.ID == "" || v.CreatedAt != now {
		t.Fatalf("expected stamped vet, got %#v", v)
	}
	if v.YearsExperience == nil || *v.YearsExperience != 7 {
		t.Fatalf("expected years_experience 7, got %v", v.YearsExperience)
	}
}

func TestService_Create_DuplicateLicense(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := Input{FirstName: "Ana", LastName: "Ríos", LicenseNumber: "VET-12345"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	in.FirstName = "Luis"
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestService_Create_RejectsBlankRequired(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []Input{
		{LastName: "Ríos", LicenseNumber: "VET-1"},
		{FirstName: "Ana", LicenseNumber: "VET-1"},
		{FirstName: "Ana", LastName: "Ríos"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}
}

func TestService_Update_ReplacesFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	v, err := svc.Create(context.Background(), Input{
		FirstName:     "Ana",
		LastName:      "Ríos",
		LicenseNumber: "VET-12345",
		Specialty:     "general",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(context.Background(), v.ID, Input{
		FirstName:     "Ana",
		LastName:      "Ríos",
		LicenseNumber: "VET-12345",
		Specialty:     "dermatology",
		ClinicID:      "c1",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Specialty != "dermatology" || updated.ClinicID != "c1" {
		t.Fatalf("expected updated fields, got %#v", updated)
	}
}

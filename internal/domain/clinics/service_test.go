package clinics

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Clinic
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Clinic{}}
}

func (r *testRepo) Create(ctx context.Context, c Clinic) error {
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Clinic, error) {
	c, ok := r.byID[id]
	if !ok {
		return Clinic{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Clinic, int, error) {
	out := make([]Clinic, 0)
	for _, c := range r.byID {
		if f.City != "" && c.City != f.City {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *testRepo) Update(ctx context.Context, c Clinic) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_StampsAndStoresTimezone(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	c, err := svc.Create(context.Background(), "admin-1", Input{
		Name:     "Clínica Central",
		City:     "Lima",
		Timezone: "America/Lima",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID == "" || c.CreatedBy != "admin-1" {
		t.Fatalf("expected stamped clinic, got %#v", c)
	}
	if c.Timezone != "America/Lima" {
		t.Fatalf("expected timezone stored, got %q", c.Timezone)
	}
	if c.CreatedAt != now || c.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_RejectsBlankRequired(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "admin-1", Input{City: "Lima"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput sin nombre, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "admin-1", Input{Name: "X"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput sin ciudad, got %v", err)
	}
}

func TestService_Update_KeepsCreator(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Hour)

	svc.now = func() time.Time { return now1 }
	c, err := svc.Create(context.Background(), "admin-1", Input{Name: "Clínica Central", City: "Lima"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	updated, err := svc.Update(context.Background(), c.ID, Input{
		Name:      "Clínica Central Norte",
		City:      "Lima",
		Emergency: true,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.CreatedBy != "admin-1" {
		t.Fatalf("expected creator untouched, got %s", updated.CreatedBy)
	}
	if !updated.Emergency {
		t.Fatalf("expected emergency flag set")
	}
	if updated.UpdatedAt != now2 || updated.CreatedAt != now1 {
		t.Fatalf("expected only UpdatedAt bumped")
	}
}

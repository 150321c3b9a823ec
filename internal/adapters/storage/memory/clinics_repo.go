package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetd/internal/domain/clinics"
)

type clinicRepo struct {
	mu   sync.RWMutex
	byID map[string]clinics.Clinic
}

func NewClinicRepo() clinics.Repository {
	return &clinicRepo{
		byID: make(map[string]clinics.Clinic),
	}
}

func (r *clinicRepo) Create(ctx context.Context, c clinics.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("clinic id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("clinic already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clinicRepo) GetByID(ctx context.Context, id string) (clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clinics.Clinic{}, clinics.ErrNotFound
	}
	return c, nil
}

func (r *clinicRepo) List(ctx context.Context, f clinics.ListFilter) ([]clinics.Clinic, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clinics.Clinic, 0)
	for _, c := range r.byID {
		if f.City != "" && c.City != f.City {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	total := len(out)
	if f.Offset >= len(out) {
		return []clinics.Clinic{}, total, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (r *clinicRepo) Update(ctx context.Context, c clinics.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("clinic id required")
	}
	if _, exists := r.byID[c.ID]; !exists {
		return clinics.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clinicRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return clinics.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetd/internal/domain/vets"
)

type vetRepo struct {
	mu   sync.RWMutex
	byID map[string]vets.Veterinarian
}

func NewVetRepo() vets.Repository {
	return &vetRepo{
		byID: make(map[string]vets.Veterinarian),
	}
}

func (r *vetRepo) Create(ctx context.Context, v vets.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vet id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vet already exists")
	}
	for _, other := range r.byID {
		if other.LicenseNumber == v.LicenseNumber {
			return vets.ErrConflict
		}
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vetRepo) GetByID(ctx context.Context, id string) (vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	return v, nil
}

func (r *vetRepo) List(ctx context.Context, f vets.ListFilter) ([]vets.Veterinarian, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Veterinarian, 0)
	for _, v := range r.byID {
		if f.Specialty != "" && v.Specialty != f.Specialty {
			continue
		}
		if f.ClinicID != "" && v.ClinicID != f.ClinicID {
			continue
		}
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	total := len(out)
	if f.Offset >= len(out) {
		return []vets.Veterinarian{}, total, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (r *vetRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vet id required")
	}
	if _, exists := r.byID[v.ID]; !exists {
		return vets.ErrNotFound
	}
	for _, other := range r.byID {
		if other.ID != v.ID && other.LicenseNumber == v.LicenseNumber {
			return vets.ErrConflict
		}
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return vets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

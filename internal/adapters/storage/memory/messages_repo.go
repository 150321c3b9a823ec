package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"vetd/internal/domain/messages"
)

type messageRepo struct {
	mu   sync.RWMutex
	byID map[string]messages.Message
}

func NewMessageRepo() messages.Repository {
	return &messageRepo{
		byID: make(map[string]messages.Message),
	}
}

func (r *messageRepo) Create(ctx context.Context, m messages.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("message already exists")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return messages.Message{}, messages.ErrNotFound
	}
	return m, nil
}

func (r *messageRepo) List(ctx context.Context, f messages.ListFilter) ([]messages.Message, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]messages.Message, 0)
	for _, m := range r.byID {
		if f.UserID != "" && m.SenderID != f.UserID && m.RecipientID != f.UserID {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.OnlyUnread && m.Read {
			continue
		}
		out = append(out, m)
	}

	// Los más nuevos primero, como un inbox.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	total := len(out)
	if f.Offset >= len(out) {
		return []messages.Message{}, total, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (r *messageRepo) Update(ctx context.Context, m messages.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	if _, exists := r.byID[m.ID]; !exists {
		return messages.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *messageRepo) MarkRead(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, exists := r.byID[id]
	if !exists {
		return messages.ErrNotFound
	}
	m.Read = true
	m.ReadAt = &at
	m.UpdatedAt = at
	r.byID[id] = m
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return messages.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

package messages

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"vetd/internal/ports/notify"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service crea y administra mensajes. Al crear uno avisa al recipient
// por el notifier; si el aviso falla, se loguea y el mensaje queda
// creado igual.
type Service struct {
	repo     Repository
	notifier notify.Notifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(repo Repository, notifier notify.Notifier, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Input junta los campos de un mensaje ya normalizados. En Update,
// sender y recipient se ignoran: son inmutables después de crear.
type Input struct {
	SenderID    string
	RecipientID string
	Subject     string
	Body        string
	Priority    string
	Category    string
}

func (s *Service) Create(ctx context.Context, in Input) (Message, error) {
	if strings.TrimSpace(in.SenderID) == "" || strings.TrimSpace(in.RecipientID) == "" {
		return Message{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Body) == "" {
		return Message{}, ErrInvalidInput
	}

	now := s.now()

	prio := in.Priority
	if prio == "" {
		prio = "normal"
	}
	cat := in.Category
	if cat == "" {
		cat = "general"
	}

	m := Message{
		ID:          uuid.NewString(),
		SenderID:    in.SenderID,
		RecipientID: in.RecipientID,
		Subject:     in.Subject,
		Body:        in.Body,
		Priority:    prio,
		Category:    cat,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Message{}, err
	}

	s.notifyRecipient(ctx, m)
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Message, error) {
	if strings.TrimSpace(id) == "" {
		return Message{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Message, int, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Message, error) {
	if strings.TrimSpace(in.Body) == "" {
		return Message{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Message{}, err
	}

	current.Subject = in.Subject
	current.Body = in.Body
	if in.Priority != "" {
		current.Priority = in.Priority
	}
	if in.Category != "" {
		current.Category = in.Category
	}
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Message{}, err
	}
	return current, nil
}

// MarkRead marca el mensaje como leído. Es idempotente: marcar dos
// veces no mueve ReadAt.
func (s *Service) MarkRead(ctx context.Context, id string) (Message, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return Message{}, err
	}
	if m.Read {
		return m, nil
	}

	if err := s.repo.MarkRead(ctx, id, s.now()); err != nil {
		return Message{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) notifyRecipient(ctx context.Context, m Message) {
	if s.notifier == nil {
		return
	}

	subject := m.Subject
	if subject == "" {
		subject = "new message"
	}
	err := s.notifier.Notify(ctx, notify.Notification{
		Recipient: m.RecipientID,
		Subject:   subject,
		Body:      m.Body,
		Metadata: map[string]string{
			"message_id": m.ID,
			"sender_id":  m.SenderID,
			"priority":   m.Priority,
			"category":   m.Category,
		},
	})
	if err != nil {
		s.log.Warn().Err(err).Str("message_id", m.ID).Msg("messages: el aviso al recipient falló")
	}
}

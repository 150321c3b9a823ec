package appointments

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
	ErrForbidden    = errors.New("forbidden")
	ErrCompleted    = errors.New("appointment already completed")
)

// Service administra el ciclo de vida de las citas. Al agendar o
// cancelar avisa al veterinario por el notifier; el aviso es best
// effort y nunca corta la operación.
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

type Input struct {
	PetID    string
	VetID    string
	ClinicID string

	Date      time.Time
	StartTime string
	EndTime   string
	Reason    string

	Status       string
	ReminderDate *time.Time
}

func (s *Service) Create(ctx context.Context, createdBy string, in Input) (Appointment, error) {
	if strings.TrimSpace(createdBy) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.VetID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Appointment{}, ErrInvalidInput
	}
	if in.StartTime == "" || in.EndTime == "" {
		return Appointment{}, ErrInvalidInput
	}

	status := Status(in.Status)
	if status == "" {
		status = StatusScheduled
	}

	now := s.now()
	a := Appointment{
		ID:           uuid.NewString(),
		PetID:        in.PetID,
		VetID:        in.VetID,
		ClinicID:     in.ClinicID,
		Date:         in.Date,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Reason:       in.Reason,
		Status:       status,
		ReminderDate: in.ReminderDate,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}

	s.notifyVet(ctx, a, "appointment scheduled")
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	if strings.TrimSpace(id) == "" {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Appointment, int, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Appointment, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.VetID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.Date.IsZero() || in.StartTime == "" || in.EndTime == "" {
		return Appointment{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	current.PetID = in.PetID
	current.VetID = in.VetID
	current.Date = in.Date
	current.StartTime = in.StartTime
	current.EndTime = in.EndTime
	current.Reason = in.Reason
	current.ReminderDate = in.ReminderDate
	if in.ClinicID != "" {
		current.ClinicID = in.ClinicID
	}
	if in.Status != "" {
		current.Status = Status(in.Status)
	}
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

// Cancel cancela la cita del usuario que la creó. Es idempotente: una
// cita ya cancelada se devuelve tal cual. Una cita completada no se
// puede cancelar.
func (s *Service) Cancel(ctx context.Context, id, userID string) (Appointment, error) {
	id = strings.TrimSpace(id)
	userID = strings.TrimSpace(userID)

	if id == "" || userID == "" {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	if a.CreatedBy != userID {
		return Appointment{}, ErrForbidden
	}

	// Idempotente
	if a.Status == StatusCancelled {
		return a, nil
	}
	if a.Status == StatusCompleted {
		return Appointment{}, ErrCompleted
	}

	now := s.now()
	a.Status = StatusCancelled
	a.UpdatedAt = now
	a.CancelledAt = &now

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}

	s.notifyVet(ctx, a, "appointment cancelled")
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) notifyVet(ctx context.Context, a Appointment, subject string) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.Notify(ctx, notify.Notification{
		Recipient: a.VetID,
		Subject:   subject,
		Body:      a.Reason,
		Metadata: map[string]string{
			"appointment_id": a.ID,
			"pet_id":         a.PetID,
			"date":           a.Date.Format("2006-01-02"),
			"start_time":     a.StartTime,
			"status":         string(a.Status),
		},
	})
	if err != nil {
		s.log.Warn().Err(err).Str("appointment_id", a.ID).Msg("appointments: el aviso al veterinario falló")
	}
}

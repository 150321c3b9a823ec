package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"vetd/internal/ports/notify"
)

// -------------------------
// Test repo y notifier
// -------------------------

type testRepo struct {
	byID map[string]Appointment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Appointment, int, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if f.CreatedBy != "" && a.CreatedBy != f.CreatedBy {
			continue
		}
		if f.PetID != "" && a.PetID != f.PetID {
			continue
		}
		if f.VetID != "" && a.VetID != f.VetID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, len(out), nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testNotifier struct {
	sent []notify.Notification
}

func (n *testNotifier) Notify(ctx context.Context, msg notify.Notification) error {
	n.sent = append(n.sent, msg)
	return nil
}

func validInput() Input {
	return Input{
		PetID:     "pet-1",
		VetID:     "vet-1",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "10:30",
		Reason:    "control anual",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsToScheduled_AndNotifiesVet(t *testing.T) {
	repo := newTestRepo()
	notifier := &testNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Create(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("expected scheduled, got %s", a.Status)
	}
	if a.CreatedBy != "owner-1" || a.CreatedAt != now {
		t.Fatalf("expected stamped appointment, got %#v", a)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.Recipient != "vet-1" || n.Subject != "appointment scheduled" {
		t.Fatalf("unexpected notification %#v", n)
	}
	if n.Metadata["date"] != "2026-09-15" || n.Metadata["start_time"] != "10:00" {
		t.Fatalf("unexpected metadata %#v", n.Metadata)
	}
}

func TestService_Create_RejectsIncompleteInput(t *testing.T) {
	svc := NewService(newTestRepo(), nil, zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"sin pet", func(in *Input) { in.PetID = "" }},
		{"sin vet", func(in *Input) { in.VetID = "" }},
		{"sin fecha", func(in *Input) { in.Date = time.Time{} }},
		{"sin hora inicio", func(in *Input) { in.StartTime = "" }},
		{"sin hora fin", func(in *Input) { in.EndTime = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := svc.Create(context.Background(), "owner-1", in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Cancel_SetsCancelled_AndIdempotent(t *testing.T) {
	repo := newTestRepo()
	notifier := &testNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	now1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	now2 := now1.Add(2 * time.Hour)

	svc.now = func() time.Time { return now1 }
	a, err := svc.Create(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	cancelled, err := svc.Cancel(context.Background(), a.ID, "owner-1")
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil || !cancelled.CancelledAt.Equal(now2) {
		t.Fatalf("expected CancelledAt now2, got %v", cancelled.CancelledAt)
	}

	// Idempotente: la segunda cancelación no mueve CancelledAt ni avisa de nuevo.
	svc.now = func() time.Time { return now2.Add(time.Hour) }
	again, err := svc.Cancel(context.Background(), a.ID, "owner-1")
	if err != nil {
		t.Fatalf("Cancel #2 error: %v", err)
	}
	if !again.CancelledAt.Equal(now2) {
		t.Fatalf("expected CancelledAt unchanged, got %v", again.CancelledAt)
	}
	if len(notifier.sent) != 2 { // scheduled + cancelled
		t.Fatalf("expected 2 notifications, got %d", len(notifier.sent))
	}
}

func TestService_Cancel_OnlyCreator(t *testing.T) {
	svc := NewService(newTestRepo(), nil, zerolog.Nop())

	a, err := svc.Create(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = svc.Cancel(context.Background(), a.ID, "intruder")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_Cancel_CompletedFails(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, zerolog.Nop())

	a, err := svc.Create(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	in := validInput()
	in.Status = string(StatusCompleted)
	if _, err := svc.Update(context.Background(), a.ID, in); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	_, err = svc.Cancel(context.Background(), a.ID, "owner-1")
	if !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got %v", err)
	}
}

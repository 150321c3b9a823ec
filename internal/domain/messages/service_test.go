package messages

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
	byID map[string]Message
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Message{}}
}

func (r *testRepo) Create(ctx context.Context, m Message) error {
	if _, ok := r.byID[m.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return Message{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Message, int, error) {
	out := make([]Message, 0)
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
	return out, len(out), nil
}

func (r *testRepo) Update(ctx context.Context, m Message) error {
	if _, ok := r.byID[m.ID]; !ok {
		return ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) MarkRead(ctx context.Context, id string, at time.Time) error {
	m, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	m.Read = true
	m.ReadAt = &at
	m.UpdatedAt = at
	r.byID[id] = m
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
	err  error
}

func (n *testNotifier) Notify(ctx context.Context, msg notify.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_NotifiesRecipient(t *testing.T) {
	repo := newTestRepo()
	notifier := &testNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	m, err := svc.Create(context.Background(), Input{
		SenderID:    "u1",
		RecipientID: "u2",
		Subject:     "Vacuna pendiente",
		Body:        "Buddy tiene refuerzo este mes",
		Priority:    "high",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if m.Category != "general" {
		t.Fatalf("expected default category, got %q", m.Category)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.Recipient != "u2" || n.Subject != "Vacuna pendiente" {
		t.Fatalf("unexpected notification %#v", n)
	}
	if n.Metadata["message_id"] != m.ID || n.Metadata["priority"] != "high" {
		t.Fatalf("unexpected metadata %#v", n.Metadata)
	}
}

func TestService_Create_SurvivesNotifierFailure(t *testing.T) {
	repo := newTestRepo()
	notifier := &testNotifier{err: errors.New("broker down")}
	svc := NewService(repo, notifier, zerolog.Nop())

	m, err := svc.Create(context.Background(), Input{
		SenderID:    "u1",
		RecipientID: "u2",
		Body:        "hola",
	})
	if err != nil {
		t.Fatalf("Create should not fail when notifier fails: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), m.ID); err != nil {
		t.Fatalf("expected message persisted: %v", err)
	}
}

func TestService_Create_RejectsBlankRequired(t *testing.T) {
	svc := NewService(newTestRepo(), nil, zerolog.Nop())

	cases := []Input{
		{RecipientID: "u2", Body: "hola"},
		{SenderID: "u1", Body: "hola"},
		{SenderID: "u1", RecipientID: "u2"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}
}

func TestService_MarkRead_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, zerolog.Nop())

	now1 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Hour)

	svc.now = func() time.Time { return now1 }
	m, err := svc.Create(context.Background(), Input{SenderID: "u1", RecipientID: "u2", Body: "hola"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	read, err := svc.MarkRead(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if !read.Read || read.ReadAt == nil || !read.ReadAt.Equal(now2) {
		t.Fatalf("expected read at now2, got %#v", read)
	}

	// Idempotente: la segunda marca no mueve ReadAt.
	svc.now = func() time.Time { return now2.Add(time.Hour) }
	again, err := svc.MarkRead(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("MarkRead #2 error: %v", err)
	}
	if !again.ReadAt.Equal(now2) {
		t.Fatalf("expected ReadAt unchanged, got %v", again.ReadAt)
	}
}

func TestService_Update_KeepsReadState(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, zerolog.Nop())

	m, err := svc.Create(context.Background(), Input{SenderID: "u1", RecipientID: "u2", Body: "hola"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.MarkRead(context.Background(), m.ID); err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}

	updated, err := svc.Update(context.Background(), m.ID, Input{Body: "hola de nuevo"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !updated.Read {
		t.Fatalf("expected read state untouched by update")
	}
	if updated.SenderID != "u1" || updated.RecipientID != "u2" {
		t.Fatalf("expected participants immutable, got %#v", updated)
	}
}

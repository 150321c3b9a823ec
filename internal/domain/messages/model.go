package messages

import "time"

// Message es un mensaje directo entre dos usuarios de la plataforma
// (dueño y veterinario, típicamente). Solo sender y recipient lo ven.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Subject     string
	Body        string
	Priority    string
	Category    string
	Read        bool
	ReadAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListFilter filtra por participante: UserID matchea sender o recipient.
type ListFilter struct {
	UserID     string
	Category   string
	OnlyUnread bool
	Limit      int
	Offset     int
}

package appointments

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment es una cita de una mascota con un veterinario. Date es el
// día; StartTime y EndTime son horas HH:MM ya normalizadas.
type Appointment struct {
	ID       string
	PetID    string
	VetID    string
	ClinicID string

	Date      time.Time
	StartTime string
	EndTime   string
	Reason    string

	Status       Status
	ReminderDate *time.Time

	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

type ListFilter struct {
	CreatedBy string
	PetID     string
	VetID     string
	Status    Status
	Limit     int
	Offset    int
}

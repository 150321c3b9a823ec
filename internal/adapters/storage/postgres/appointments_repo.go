package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"vetd/internal/domain/appointments"
)

type appointmentModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	PetID        string     `gorm:"column:pet_id;index"`
	VetID        string     `gorm:"column:vet_id;index"`
	ClinicID     string     `gorm:"column:clinic_id;index"`
	Date         time.Time  `gorm:"column:date"`
	StartTime    string     `gorm:"column:start_time"`
	EndTime      string     `gorm:"column:end_time"`
	Reason       string     `gorm:"column:reason"`
	Status       string     `gorm:"column:status;index"`
	ReminderDate *time.Time `gorm:"column:reminder_date"`
	CreatedBy    string     `gorm:"column:created_by;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func appointmentModelFromEntity(a appointments.Appointment) appointmentModel {
	return appointmentModel{
		ID:           a.ID,
		PetID:        a.PetID,
		VetID:        a.VetID,
		ClinicID:     a.ClinicID,
		Date:         a.Date,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Reason:       a.Reason,
		Status:       string(a.Status),
		ReminderDate: a.ReminderDate,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		CancelledAt:  a.CancelledAt,
	}
}

func (m appointmentModel) toEntity() appointments.Appointment {
	return appointments.Appointment{
		ID:           m.ID,
		PetID:        m.PetID,
		VetID:        m.VetID,
		ClinicID:     m.ClinicID,
		Date:         m.Date,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Reason:       m.Reason,
		Status:       appointments.Status(m.Status),
		ReminderDate: m.ReminderDate,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		CancelledAt:  m.CancelledAt,
	}
}

func appointmentUpdates(a appointments.Appointment) map[string]any {
	row := appointmentModelFromEntity(a)
	return map[string]any{
		"pet_id":        row.PetID,
		"vet_id":        row.VetID,
		"clinic_id":     row.ClinicID,
		"date":          row.Date,
		"start_time":    row.StartTime,
		"end_time":      row.EndTime,
		"reason":        row.Reason,
		"status":        row.Status,
		"reminder_date": row.ReminderDate,
		"updated_at":    row.UpdatedAt,
		"cancelled_at":  row.CancelledAt,
	}
}

type AppointmentsRepo struct {
	db *gorm.DB
}

func NewAppointmentsRepo(db *gorm.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	row := appointmentModelFromEntity(a)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	var row appointmentModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return row.toEntity(), nil
}

func (r *AppointmentsRepo) List(ctx context.Context, f appointments.ListFilter) ([]appointments.Appointment, int, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Orden de agenda: día y hora de la cita.
	tx := r.filtered(ctx, f).Order("date ASC, start_time ASC")
	if f.Offset > 0 {
		tx = tx.Offset(f.Offset)
	}
	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}

	var rows []appointmentModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]appointments.Appointment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	result := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ?", a.ID).
		Updates(appointmentUpdates(a))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&appointmentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) filtered(ctx context.Context, f appointments.ListFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&appointmentModel{})
	if f.CreatedBy != "" {
		tx = tx.Where("created_by = ?", f.CreatedBy)
	}
	if f.PetID != "" {
		tx = tx.Where("pet_id = ?", f.PetID)
	}
	if f.VetID != "" {
		tx = tx.Where("vet_id = ?", f.VetID)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", string(f.Status))
	}
	return tx
}

package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"vetd/internal/domain/clinics"
)

type clinicModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	City      string    `gorm:"column:city;index"`
	Phone     string    `gorm:"column:phone"`
	Email     string    `gorm:"column:email"`
	Timezone  string    `gorm:"column:timezone"`
	Emergency bool      `gorm:"column:emergency"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (clinicModel) TableName() string { return "clinics" }

func clinicModelFromEntity(c clinics.Clinic) clinicModel {
	return clinicModel{
		ID:        c.ID,
		Name:      c.Name,
		City:      c.City,
		Phone:     c.Phone,
		Email:     c.Email,
		Timezone:  c.Timezone,
		Emergency: c.Emergency,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m clinicModel) toEntity() clinics.Clinic {
	return clinics.Clinic{
		ID:        m.ID,
		Name:      m.Name,
		City:      m.City,
		Phone:     m.Phone,
		Email:     m.Email,
		Timezone:  m.Timezone,
		Emergency: m.Emergency,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func clinicUpdates(c clinics.Clinic) map[string]any {
	row := clinicModelFromEntity(c)
	return map[string]any{
		"name":       row.Name,
		"city":       row.City,
		"phone":      row.Phone,
		"email":      row.Email,
		"timezone":   row.Timezone,
		"emergency":  row.Emergency,
		"updated_at": row.UpdatedAt,
	}
}

type ClinicsRepo struct {
	db *gorm.DB
}

func NewClinicsRepo(db *gorm.DB) *ClinicsRepo {
	return &ClinicsRepo{db: db}
}

func (r *ClinicsRepo) Create(ctx context.Context, c clinics.Clinic) error {
	row := clinicModelFromEntity(c)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *ClinicsRepo) GetByID(ctx context.Context, id string) (clinics.Clinic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clinics.Clinic{}, clinics.ErrNotFound
	}

	var row clinicModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return clinics.Clinic{}, clinics.ErrNotFound
		}
		return clinics.Clinic{}, err
	}
	return row.toEntity(), nil
}

func (r *ClinicsRepo) List(ctx context.Context, f clinics.ListFilter) ([]clinics.Clinic, int, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := r.filtered(ctx, f).Order("created_at ASC")
	if f.Offset > 0 {
		tx = tx.Offset(f.Offset)
	}
	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}

	var rows []clinicModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]clinics.Clinic, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *ClinicsRepo) Update(ctx context.Context, c clinics.Clinic) error {
	result := r.db.WithContext(ctx).
		Model(&clinicModel{}).
		Where("id = ?", c.ID).
		Updates(clinicUpdates(c))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return clinics.ErrNotFound
	}
	return nil
}

func (r *ClinicsRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&clinicModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return clinics.ErrNotFound
	}
	return nil
}

func (r *ClinicsRepo) filtered(ctx context.Context, f clinics.ListFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&clinicModel{})
	if f.City != "" {
		tx = tx.Where("city = ?", f.City)
	}
	return tx
}

package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"vetd/internal/domain/vets"
)

type vetModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	FirstName       string    `gorm:"column:first_name"`
	LastName        string    `gorm:"column:last_name"`
	Specialty       string    `gorm:"column:specialty;index"`
	LicenseNumber   string    `gorm:"column:license_number;uniqueIndex"`
	Email           string    `gorm:"column:email"`
	YearsExperience *int      `gorm:"column:years_experience"`
	ClinicID        string    `gorm:"column:clinic_id;index"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (vetModel) TableName() string { return "veterinarians" }

func vetModelFromEntity(v vets.Veterinarian) vetModel {
	return vetModel{
		ID:              v.ID,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		Specialty:       v.Specialty,
		LicenseNumber:   v.LicenseNumber,
		Email:           v.Email,
		YearsExperience: v.YearsExperience,
		ClinicID:        v.ClinicID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func (m vetModel) toEntity() vets.Veterinarian {
	return vets.Veterinarian{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Specialty:       m.Specialty,
		LicenseNumber:   m.LicenseNumber,
		Email:           m.Email,
		YearsExperience: m.YearsExperience,
		ClinicID:        m.ClinicID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func vetUpdates(v vets.Veterinarian) map[string]any {
	row := vetModelFromEntity(v)
	return map[string]any{
		"first_name":       row.FirstName,
		"last_name":        row.LastName,
		"specialty":        row.Specialty,
		"license_number":   row.LicenseNumber,
		"email":            row.Email,
		"years_experience": row.YearsExperience,
		"clinic_id":        row.ClinicID,
		"updated_at":       row.UpdatedAt,
	}
}

type VetsRepo struct {
	db *gorm.DB
}

func NewVetsRepo(db *gorm.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) Create(ctx context.Context, v vets.Veterinarian) error {
	row := vetModelFromEntity(v)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return vets.ErrConflict
		}
		return err
	}
	return nil
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Veterinarian, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Veterinarian{}, vets.ErrNotFound
	}

	var row vetModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vets.Veterinarian{}, vets.ErrNotFound
		}
		return vets.Veterinarian{}, err
	}
	return row.toEntity(), nil
}

func (r *VetsRepo) List(ctx context.Context, f vets.ListFilter) ([]vets.Veterinarian, int, error) {
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

	var rows []vetModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]vets.Veterinarian, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *VetsRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	result := r.db.WithContext(ctx).
		Model(&vetModel{}).
		Where("id = ?", v.ID).
		Updates(vetUpdates(v))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return vets.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r *VetsRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&vetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r *VetsRepo) filtered(ctx context.Context, f vets.ListFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&vetModel{})
	if f.Specialty != "" {
		tx = tx.Where("specialty = ?", f.Specialty)
	}
	if f.ClinicID != "" {
		tx = tx.Where("clinic_id = ?", f.ClinicID)
	}
	return tx
}

package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"vetd/internal/domain/pets"
)

type petModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	OwnerUserID  string     `gorm:"column:owner_user_id;index"`
	Name         string     `gorm:"column:name"`
	Species      string     `gorm:"column:species;index"`
	Breed        string     `gorm:"column:breed"`
	Sex          string     `gorm:"column:sex"`
	BirthDate    *time.Time `gorm:"column:birth_date"`
	Bio          string     `gorm:"column:bio"`
	WeightKg     *float64   `gorm:"column:weight_kg"`
	Microchip    string     `gorm:"column:microchip"`
	DeceasedDate *time.Time `gorm:"column:deceased_date"`
	Temperament  string     `gorm:"column:temperament"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (petModel) TableName() string { return "pets" }

func petModelFromEntity(p pets.Pet) petModel {
	return petModel{
		ID:           p.ID,
		OwnerUserID:  p.OwnerUserID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Sex:          p.Sex,
		BirthDate:    p.BirthDate,
		Bio:          p.Bio,
		WeightKg:     p.WeightKg,
		Microchip:    p.Microchip,
		DeceasedDate: p.DeceasedDate,
		Temperament:  p.Temperament,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m petModel) toEntity() pets.Pet {
	return pets.Pet{
		ID:           m.ID,
		OwnerUserID:  m.OwnerUserID,
		Name:         m.Name,
		Species:      m.Species,
		Breed:        m.Breed,
		Sex:          m.Sex,
		BirthDate:    m.BirthDate,
		Bio:          m.Bio,
		WeightKg:     m.WeightKg,
		Microchip:    m.Microchip,
		DeceasedDate: m.DeceasedDate,
		Temperament:  m.Temperament,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// petUpdates usa un mapa para que los campos en cero también pisen la
// fila: un PATCH que borra un opcional tiene que llegar a la columna.
func petUpdates(p pets.Pet) map[string]any {
	row := petModelFromEntity(p)
	return map[string]any{
		"name":          row.Name,
		"species":       row.Species,
		"breed":         row.Breed,
		"sex":           row.Sex,
		"birth_date":    row.BirthDate,
		"bio":           row.Bio,
		"weight_kg":     row.WeightKg,
		"microchip":     row.Microchip,
		"deceased_date": row.DeceasedDate,
		"temperament":   row.Temperament,
		"updated_at":    row.UpdatedAt,
	}
}

type PetsRepo struct {
	db *gorm.DB
}

func NewPetsRepo(db *gorm.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	row := petModelFromEntity(p)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	var row petModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return row.toEntity(), nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, int, error) {
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

	var rows []petModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	result := r.db.WithContext(ctx).
		Model(&petModel{}).
		Where("id = ?", p.ID).
		Updates(petUpdates(p))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&petModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) filtered(ctx context.Context, f pets.ListFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&petModel{})
	if f.OwnerUserID != "" {
		tx = tx.Where("owner_user_id = ?", f.OwnerUserID)
	}
	if f.Species != "" {
		tx = tx.Where("species = ?", f.Species)
	}
	return tx
}

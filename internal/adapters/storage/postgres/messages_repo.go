package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"vetd/internal/domain/messages"
)

type messageModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	SenderID    string     `gorm:"column:sender_id;index"`
	RecipientID string     `gorm:"column:recipient_id;index"`
	Subject     string     `gorm:"column:subject"`
	Body        string     `gorm:"column:body"`
	Priority    string     `gorm:"column:priority"`
	Category    string     `gorm:"column:category;index"`
	Read        bool       `gorm:"column:read"`
	ReadAt      *time.Time `gorm:"column:read_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (messageModel) TableName() string { return "messages" }

func messageModelFromEntity(m messages.Message) messageModel {
	return messageModel{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Subject:     m.Subject,
		Body:        m.Body,
		Priority:    m.Priority,
		Category:    m.Category,
		Read:        m.Read,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (m messageModel) toEntity() messages.Message {
	return messages.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Subject:     m.Subject,
		Body:        m.Body,
		Priority:    m.Priority,
		Category:    m.Category,
		Read:        m.Read,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// messageUpdates no toca read ni read_at: eso es de MarkRead.
func messageUpdates(m messages.Message) map[string]any {
	row := messageModelFromEntity(m)
	return map[string]any{
		"subject":    row.Subject,
		"body":       row.Body,
		"priority":   row.Priority,
		"category":   row.Category,
		"updated_at": row.UpdatedAt,
	}
}

type MessagesRepo struct {
	db *gorm.DB
}

func NewMessagesRepo(db *gorm.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (r *MessagesRepo) Create(ctx context.Context, m messages.Message) error {
	row := messageModelFromEntity(m)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MessagesRepo) GetByID(ctx context.Context, id string) (messages.Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return messages.Message{}, messages.ErrNotFound
	}

	var row messageModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return messages.Message{}, messages.ErrNotFound
		}
		return messages.Message{}, err
	}
	return row.toEntity(), nil
}

func (r *MessagesRepo) List(ctx context.Context, f messages.ListFilter) ([]messages.Message, int, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Inbox: los más nuevos primero.
	tx := r.filtered(ctx, f).Order("created_at DESC")
	if f.Offset > 0 {
		tx = tx.Offset(f.Offset)
	}
	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}

	var rows []messageModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]messages.Message, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *MessagesRepo) Update(ctx context.Context, m messages.Message) error {
	result := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("id = ?", m.ID).
		Updates(messageUpdates(m))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return messages.ErrNotFound
	}
	return nil
}

func (r *MessagesRepo) MarkRead(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"read":       true,
			"read_at":    at,
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return messages.ErrNotFound
	}
	return nil
}

func (r *MessagesRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&messageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return messages.ErrNotFound
	}
	return nil
}

func (r *MessagesRepo) filtered(ctx context.Context, f messages.ListFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&messageModel{})
	if f.UserID != "" {
		tx = tx.Where("sender_id = ? OR recipient_id = ?", f.UserID, f.UserID)
	}
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f.OnlyUnread {
		tx = tx.Where("read = ?", false)
	}
	return tx
}

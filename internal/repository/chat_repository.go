package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mindspace/internal/model"
)

// ChatRepository stores companion transcripts grouped by day key.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// FindByDate returns the chat day for a yyyy-mm-dd key, or nil when the
// day has no transcript yet.
func (r *ChatRepository) FindByDate(ctx context.Context, date string) (*model.ChatDay, error) {
	var day model.ChatDay
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&day).Error
	switch {
	case err == nil:
		return &day, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find chat day: %w", err)
	}
}

// ListSince returns chat days with date >= the given key, oldest first.
func (r *ChatRepository) ListSince(ctx context.Context, date string) ([]model.ChatDay, error) {
	var days []model.ChatDay
	if err := r.db.WithContext(ctx).
		Where("date >= ?", date).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, fmt.Errorf("list chat days: %w", err)
	}
	return days, nil
}

// AppendMessages adds messages to a day's transcript, creating the day
// row on first write.
func (r *ChatRepository) AppendMessages(ctx context.Context, date string, messages ...model.ChatMessage) error {
	day, err := r.FindByDate(ctx, date)
	if err != nil {
		return err
	}
	if day == nil {
		day = &model.ChatDay{Date: date, Messages: messages}
		if err := r.db.WithContext(ctx).Create(day).Error; err != nil {
			return fmt.Errorf("create chat day: %w", err)
		}
		return nil
	}
	day.Messages = append(day.Messages, messages...)
	if err := r.db.WithContext(ctx).Save(day).Error; err != nil {
		return fmt.Errorf("update chat day: %w", err)
	}
	return nil
}

// DeleteBefore removes chat days older than the given yyyy-mm-dd key.
func (r *ChatRepository) DeleteBefore(ctx context.Context, cutoff string) error {
	if err := r.db.WithContext(ctx).
		Where("date < ?", cutoff).
		Delete(&model.ChatDay{}).Error; err != nil {
		return fmt.Errorf("prune chat days: %w", err)
	}
	return nil
}

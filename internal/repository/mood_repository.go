package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mindspace/internal/model"
)

// MoodRepository handles mood journal entries.
type MoodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

func (r *MoodRepository) Create(ctx context.Context, entry *model.MoodEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create mood entry: %w", err)
	}
	return nil
}

// ListBetween returns entries whose date falls in [start, end), oldest first.
func (r *MoodRepository) ListBetween(ctx context.Context, start, end time.Time) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	return entries, nil
}

// LatestBetween returns the most recent entry in [start, end), or nil.
// Duplicate same-day entries are allowed at the store level; the newest
// one is treated as authoritative.
func (r *MoodRepository) LatestBetween(ctx context.Context, start, end time.Time) (*model.MoodEntry, error) {
	var entry model.MoodEntry
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		First(&entry).Error
	switch {
	case err == nil:
		return &entry, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find mood entry: %w", err)
	}
}

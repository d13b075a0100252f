package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mindspace/internal/model"
)

// SettingsRepository manages the singleton settings record.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, creating one with defaults on first run.
func (r *SettingsRepository) Get(ctx context.Context) (*model.AppSettings, error) {
	var settings model.AppSettings
	err := r.db.WithContext(ctx).Order("id ASC").First(&settings).Error
	switch {
	case err == nil:
		return &settings, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = model.AppSettings{
			DailyResetTime:       model.DefaultResetTime,
			NotificationsEnabled: true,
			LastTaskReset:        time.Now(),
		}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("create settings: %w", err)
		}
		return &settings, nil
	default:
		return nil, fmt.Errorf("find settings: %w", err)
	}
}

func (r *SettingsRepository) Update(ctx context.Context, settings *model.AppSettings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

// StampReset records the moment the daily reset last completed.
func (r *SettingsRepository) StampReset(ctx context.Context, settings *model.AppSettings, at time.Time) error {
	settings.LastTaskReset = at
	if err := r.db.WithContext(ctx).Model(settings).
		Update("last_task_reset", at).Error; err != nil {
		return fmt.Errorf("stamp reset: %w", err)
	}
	return nil
}

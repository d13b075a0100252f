package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mindspace/internal/model"
	"mindspace/internal/repository"
)

// ResetService rolls the task board over once per calendar day: stale
// completed tasks are purged, pending tasks reopen, and today's recurring
// templates are materialized as concrete rows.
type ResetService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewResetService(db *gorm.DB, logger *zap.Logger) *ResetService {
	return &ResetService{db: db, logger: logger}
}

// CheckAndReset performs the daily reset if the configured reset time has
// passed and no reset happened yet today. It reports whether a reset
// occurred. Re-invoking after a completed reset on the same day is a
// no-op. All mutations run inside one transaction, so two racing
// invocations cannot double-materialize recurring tasks.
func (s *ResetService) CheckAndReset(ctx context.Context, now time.Time) (bool, error) {
	settingsRepo := repository.NewSettingsRepository(s.db)
	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		return false, err
	}

	resetAt, err := settings.ResetTimeOn(now)
	if err != nil {
		return false, err
	}
	if now.Before(resetAt) || model.SameDay(settings.LastTaskReset, now) {
		return false, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskRepo := repository.NewTaskRepository(tx)

		if err := s.purgeStaleCompleted(ctx, taskRepo, now); err != nil {
			return err
		}
		if err := s.reopenPending(ctx, taskRepo); err != nil {
			return err
		}
		if err := s.materializeRecurring(ctx, taskRepo, now); err != nil {
			return err
		}

		return repository.NewSettingsRepository(tx).StampReset(ctx, settings, now)
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("daily reset completed", zap.Time("at", now))
	return true, nil
}

// purgeStaleCompleted deletes completed tasks created before today.
func (s *ResetService) purgeStaleCompleted(ctx context.Context, taskRepo *repository.TaskRepository, now time.Time) error {
	completed, err := taskRepo.ListCompleted(ctx)
	if err != nil {
		return err
	}
	for _, task := range completed {
		if model.SameDay(task.CreatedAt, now) {
			continue
		}
		if err := taskRepo.Delete(ctx, task.ID); err != nil {
			return err
		}
	}
	return nil
}

// reopenPending clears the completion flag and any stale completion
// timestamp on every pending task.
func (s *ResetService) reopenPending(ctx context.Context, taskRepo *repository.TaskRepository) error {
	pending, err := taskRepo.ListPending(ctx)
	if err != nil {
		return err
	}
	for _, task := range pending {
		task.Completed = false
		task.CompletedAt = nil
		if err := taskRepo.Update(ctx, &task); err != nil {
			return err
		}
	}
	return nil
}

// materializeRecurring persists today's due recurring instances that do
// not already exist as concrete rows.
func (s *ResetService) materializeRecurring(ctx context.Context, taskRepo *repository.TaskRepository, now time.Time) error {
	templates, err := taskRepo.ListRecurrent(ctx)
	if err != nil {
		return err
	}
	for _, template := range templates {
		if !template.RecursOn(now) {
			continue
		}
		exists, err := taskRepo.TitleExistsOn(ctx, template.Title, now)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		instance := template.VirtualInstance(now)
		if err := taskRepo.Create(ctx, &instance); err != nil {
			return err
		}
	}
	return nil
}

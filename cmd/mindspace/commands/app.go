package commands

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mindspace/internal/config"
	"mindspace/internal/logger"
	"mindspace/internal/repository"
	"mindspace/internal/service"
)

// app bundles everything a command needs: config, store, repositories,
// and services wired together.
type app struct {
	cfg    config.Config
	db     *gorm.DB
	logger *zap.Logger

	taskRepo     *repository.TaskRepository
	moodRepo     *repository.MoodRepository
	chatRepo     *repository.ChatRepository
	settingsRepo *repository.SettingsRepository

	tasks   *service.TaskService
	moods   *service.MoodService
	reports *service.ReportService
	reset   *service.ResetService
	notify  *service.NotifyService
}

// openApp loads config, opens the database, and wires the services. The
// returned cleanup closes the store and flushes logs.
func openApp() (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Debug)
	if err != nil {
		return nil, nil, err
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Sync(log)
		return nil, nil, err
	}

	a := &app{
		cfg:          cfg,
		db:           db,
		logger:       log,
		taskRepo:     repository.NewTaskRepository(db),
		moodRepo:     repository.NewMoodRepository(db),
		chatRepo:     repository.NewChatRepository(db),
		settingsRepo: repository.NewSettingsRepository(db),
	}
	a.tasks = service.NewTaskService(a.taskRepo)
	a.moods = service.NewMoodService(a.moodRepo)
	a.reports = service.NewReportService(a.taskRepo, a.moodRepo)
	a.reset = service.NewResetService(db, log)
	a.notify = service.NewNotifyService(a.settingsRepo, log)

	cleanup := func() {
		a.notify.Stop()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		logger.Sync(log)
	}
	return a, cleanup, nil
}

// checkReset runs the once-per-day reset before commands that read or
// mutate the task board. A failed reset is logged and treated as "no
// reset happened"; it never blocks the command.
func (a *app) checkReset(ctx context.Context) {
	if _, err := a.reset.CheckAndReset(ctx, time.Now()); err != nil {
		a.logger.Warn("daily reset failed", zap.Error(err))
	}
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"mindspace/internal/repository"
)

// DefaultReminderDelay is how long after creating a high-priority task
// the reminder fires.
const DefaultReminderDelay = 30 * time.Minute

// NotifyService shows desktop notifications, gated on the user's
// notifications-enabled setting. Scheduled reminders live only in this
// process; one scheduled just before shutdown is lost.
type NotifyService struct {
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger

	mu     sync.Mutex
	timers []*time.Timer
}

func NewNotifyService(settingsRepo *repository.SettingsRepository, logger *zap.Logger) *NotifyService {
	return &NotifyService{settingsRepo: settingsRepo, logger: logger}
}

// Show displays a notification now. Display failures are logged, never
// returned: notification delivery is best effort.
func (s *NotifyService) Show(ctx context.Context, title, body string) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Warn("notification settings lookup failed", zap.Error(err))
		return
	}
	if !settings.NotificationsEnabled {
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		s.logger.Warn("notification display failed", zap.Error(err))
	}
}

// ScheduleTaskReminder fires a reminder for the task after the delay.
func (s *NotifyService) ScheduleTaskReminder(ctx context.Context, taskTitle string, delay time.Duration) {
	if delay <= 0 {
		delay = DefaultReminderDelay
	}
	timer := time.AfterFunc(delay, func() {
		s.Show(ctx, "Lembrete de tarefa", "Não esqueça: "+taskTitle)
	})

	s.mu.Lock()
	s.timers = append(s.timers, timer)
	s.mu.Unlock()
}

// ShowMoodReminder asks the user to record today's mood.
func (s *NotifyService) ShowMoodReminder(ctx context.Context) {
	s.Show(ctx, "Como você está se sentindo hoje?", "Tire um momento para registrar seu humor e pensamentos")
}

// Stop cancels every pending reminder timer.
func (s *NotifyService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil
}

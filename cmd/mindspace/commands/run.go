package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mindspace/internal/ai"
	"mindspace/internal/service"
)

const (
	// resetCheckInterval is how often the daemon re-evaluates the daily
	// reset guard. The check is idempotent within a calendar day.
	resetCheckInterval = time.Minute

	// nudgeTime is when the companion reminds about pending tasks.
	nudgeTime = "19:00"
	// moodReminderTime is when the daily mood notification fires.
	moodReminderTime = "20:00"
)

// NewRunCmd creates the long-lived daemon: it keeps the daily reset,
// companion nudge, and reminders running until interrupted.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the background daemon (daily reset, reminders, nudges)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			var provider ai.Provider
			if a.cfg.OpenAIKey != "" {
				provider = ai.NewOpenAIProvider(a.cfg.OpenAIKey, a.cfg.AIBaseURL, a.cfg.AIModel, a.logger)
			}
			chat := service.NewChatService(a.chatRepo, a.tasks, a.moods, provider, a.logger)

			// Catch up immediately in case the process was down at the
			// configured reset time.
			a.checkReset(ctx)
			if err := chat.PruneOld(ctx, time.Now()); err != nil {
				a.logger.Warn("chat prune failed", zap.Error(err))
			}

			scheduler := service.NewSchedulerService(time.Local)

			if _, err := scheduler.ScheduleInterval(resetCheckInterval, func() {
				jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				a.checkReset(jobCtx)
			}); err != nil {
				return err
			}

			if _, err := scheduler.ScheduleDaily(nudgeTime, func() {
				jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				nudged, err := chat.Nudge(jobCtx, time.Now())
				if err != nil {
					a.logger.Warn("companion nudge failed", zap.Error(err))
					return
				}
				if nudged {
					a.notify.Show(jobCtx, "Joy", "Você ainda tem tarefas pendentes hoje. Dê uma olhada no chat.")
				}
			}); err != nil {
				return err
			}

			if _, err := scheduler.ScheduleDaily(moodReminderTime, func() {
				jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				a.notify.ShowMoodReminder(jobCtx)
			}); err != nil {
				return err
			}

			scheduler.Start()
			defer scheduler.Stop()

			a.logger.Info("mindspace daemon started")
			<-ctx.Done()
			a.logger.Info("shutdown complete")
			return nil
		},
	}
}

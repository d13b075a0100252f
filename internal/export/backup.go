package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"mindspace/internal/model"
	"mindspace/internal/repository"
)

// Backup is the JSON snapshot shape: a human-retrievable export, not a
// restore format.
type Backup struct {
	ExportDate  time.Time         `json:"exportDate"`
	Tasks       []model.Task      `json:"tasks"`
	MoodEntries []model.MoodEntry `json:"moodEntries"`
}

// WriteBackup dumps every task and mood entry as pretty-printed JSON.
func WriteBackup(ctx context.Context, w io.Writer, taskRepo *repository.TaskRepository, moodRepo *repository.MoodRepository, now time.Time) error {
	// Wide-open range: everything ever stored.
	var zero time.Time
	end := now.AddDate(100, 0, 0)

	tasks, err := taskRepo.ListCreatedBetween(ctx, zero, end)
	if err != nil {
		return err
	}
	moods, err := moodRepo.ListBetween(ctx, zero, end)
	if err != nil {
		return err
	}

	backup := Backup{
		ExportDate:  now,
		Tasks:       tasks,
		MoodEntries: moods,
	}
	if backup.Tasks == nil {
		backup.Tasks = []model.Task{}
	}
	if backup.MoodEntries == nil {
		backup.MoodEntries = []model.MoodEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// BackupFileName names the backup file for the given day.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("mindspace-backup-%s.json", now.Format(dateLayout))
}

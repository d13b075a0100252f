package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"mindspace/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestSettingsRepository_GetCreatesDefaults(t *testing.T) {
	t.Parallel()

	repo := NewSettingsRepository(newTestDB(t))
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.DailyResetTime != model.DefaultResetTime {
		t.Errorf("DailyResetTime = %q, want %q", settings.DailyResetTime, model.DefaultResetTime)
	}
	if !settings.NotificationsEnabled {
		t.Error("notifications should default to enabled")
	}

	// A second Get returns the same row, not a new one.
	again, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if again.ID != settings.ID {
		t.Errorf("expected singleton row, got IDs %d and %d", settings.ID, again.ID)
	}
}

func TestTaskRepository_TitleExistsOn(t *testing.T) {
	t.Parallel()

	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.Local)

	task := model.Task{Title: "Alongar", Priority: model.PriorityLow, CreatedAt: day}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err := repo.TitleExistsOn(ctx, "Alongar", day)
	if err != nil {
		t.Fatalf("TitleExistsOn: %v", err)
	}
	if !exists {
		t.Error("expected title to exist on its creation day")
	}

	exists, err = repo.TitleExistsOn(ctx, "Alongar", day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("TitleExistsOn next day: %v", err)
	}
	if exists {
		t.Error("title should not exist on the following day")
	}
}

func TestMoodRepository_LatestBetween(t *testing.T) {
	t.Parallel()

	repo := NewMoodRepository(newTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	// Duplicate same-day entries are allowed; the newest wins.
	first := model.MoodEntry{Date: day.Add(9 * time.Hour), Mood: 2, Emotions: model.StringList{}}
	second := model.MoodEntry{Date: day.Add(20 * time.Hour), Mood: 5, Note: "melhorou", Emotions: model.StringList{"Feliz"}}
	for _, e := range []*model.MoodEntry{&first, &second} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	latest, err := repo.LatestBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("LatestBetween: %v", err)
	}
	if latest == nil || latest.Mood != 5 {
		t.Fatalf("latest = %+v, want the evening entry", latest)
	}
	if len(latest.Emotions) != 1 || latest.Emotions[0] != "Feliz" {
		t.Errorf("Emotions = %v, want [Feliz]", latest.Emotions)
	}

	empty, err := repo.LatestBetween(ctx, day.AddDate(0, 0, 1), day.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("LatestBetween empty range: %v", err)
	}
	if empty != nil {
		t.Errorf("expected nil for empty range, got %+v", empty)
	}
}

func TestChatRepository_AppendAndPrune(t *testing.T) {
	t.Parallel()

	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	msg := func(role, content string, ts int64) model.ChatMessage {
		return model.ChatMessage{Role: role, Content: content, TS: ts}
	}

	if err := repo.AppendMessages(ctx, "2024-01-10", msg(model.RoleUser, "oi", 1)); err != nil {
		t.Fatalf("AppendMessages create: %v", err)
	}
	if err := repo.AppendMessages(ctx, "2024-01-10", msg(model.RoleAssistant, "olá!", 2)); err != nil {
		t.Fatalf("AppendMessages update: %v", err)
	}
	if err := repo.AppendMessages(ctx, "2023-12-01", msg(model.RoleUser, "antigo", 3)); err != nil {
		t.Fatalf("AppendMessages old day: %v", err)
	}

	day, err := repo.FindByDate(ctx, "2024-01-10")
	if err != nil {
		t.Fatalf("FindByDate: %v", err)
	}
	if day == nil || len(day.Messages) != 2 {
		t.Fatalf("day = %+v, want 2 messages", day)
	}
	if day.Messages[0].Content != "oi" || day.Messages[1].Content != "olá!" {
		t.Errorf("messages out of order: %+v", day.Messages)
	}

	if err := repo.DeleteBefore(ctx, "2024-01-01"); err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	old, err := repo.FindByDate(ctx, "2023-12-01")
	if err != nil {
		t.Fatalf("FindByDate old: %v", err)
	}
	if old != nil {
		t.Error("old day should have been pruned")
	}
	kept, err := repo.FindByDate(ctx, "2024-01-10")
	if err != nil {
		t.Fatalf("FindByDate kept: %v", err)
	}
	if kept == nil {
		t.Error("recent day should survive pruning")
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"mindspace/internal/model"
	"mindspace/internal/repository"
)

func TestMoodService_RecordAndShow(t *testing.T) {
	t.Parallel()

	svc := NewMoodService(repository.NewMoodRepository(newTestDB(t)))
	ctx := context.Background()
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)

	if _, err := svc.RecordMood(ctx, MoodInput{Mood: 0}, now); err == nil {
		t.Error("score below 1 must be rejected")
	}
	if _, err := svc.RecordMood(ctx, MoodInput{Mood: 6}, now); err == nil {
		t.Error("score above 5 must be rejected")
	}

	entry, err := svc.RecordMood(ctx, MoodInput{Mood: 5, Note: "ótimo dia", Emotions: []string{"Feliz", "Grata"}}, now)
	if err != nil {
		t.Fatalf("RecordMood: %v", err)
	}
	if model.MoodLabel(entry.Mood) != "Incrível" {
		t.Errorf("label for score 5 = %q, want Incrível", model.MoodLabel(entry.Mood))
	}

	// A later same-day entry supersedes the earlier one.
	if _, err := svc.RecordMood(ctx, MoodInput{Mood: 3}, now.Add(4*time.Hour)); err != nil {
		t.Fatalf("RecordMood update: %v", err)
	}

	today, err := svc.TodaysMood(ctx, now)
	if err != nil {
		t.Fatalf("TodaysMood: %v", err)
	}
	if today == nil || today.Mood != 3 {
		t.Errorf("today's mood = %+v, want the most recent entry", today)
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"mindspace/internal/model"
	"mindspace/internal/repository"
	"mindspace/internal/validation"
)

// MoodInput represents a mood journal submission.
type MoodInput struct {
	Mood     int `validate:"mood_score"`
	Note     string
	Emotions []string
}

// MoodService wraps the mood journal. Entries are append-only: updating
// today's mood inserts a new record and the most recent one wins.
type MoodService struct {
	moodRepo *repository.MoodRepository
}

func NewMoodService(moodRepo *repository.MoodRepository) *MoodService {
	return &MoodService{moodRepo: moodRepo}
}

// RecordMood stores a new entry dated now.
func (s *MoodService) RecordMood(ctx context.Context, input MoodInput, now time.Time) (*model.MoodEntry, error) {
	if err := validation.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid mood entry: %w", err)
	}

	entry := model.MoodEntry{
		Date:     now,
		Mood:     input.Mood,
		Note:     input.Note,
		Emotions: model.StringList(input.Emotions),
	}
	if entry.Emotions == nil {
		entry.Emotions = model.StringList{}
	}

	if err := s.moodRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// TodaysMood returns the authoritative entry for today, or nil.
func (s *MoodService) TodaysMood(ctx context.Context, now time.Time) (*model.MoodEntry, error) {
	start := model.StartOfDay(now)
	return s.moodRepo.LatestBetween(ctx, start, start.AddDate(0, 0, 1))
}

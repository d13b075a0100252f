package service

import (
	"context"
	"testing"
	"time"

	"mindspace/internal/model"
	"mindspace/internal/repository"
)

func TestPeriodRange(t *testing.T) {
	t.Parallel()

	// 2024-01-10 is a Wednesday.
	now := time.Date(2024, time.January, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		period    ReportPeriod
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "week is Sunday-based",
			period:    PeriodWeek,
			wantStart: time.Date(2024, time.January, 7, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2024, time.January, 14, 0, 0, 0, 0, time.Local),
		},
		{
			name:      "month",
			period:    PeriodMonth,
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "unknown",
			period:  ReportPeriod("fortnight"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end, err := PeriodRange(tt.period, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PeriodRange error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("PeriodRange = [%v, %v), want [%v, %v)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestReportService_Generate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	svc := NewReportService(taskRepo, moodRepo)
	ctx := context.Background()

	now := time.Date(2024, time.January, 10, 15, 0, 0, 0, time.Local)
	inWeek := time.Date(2024, time.January, 8, 9, 0, 0, 0, time.Local)
	outOfWeek := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)

	tasks := []model.Task{
		{Title: "a", Priority: model.PriorityLow, CreatedAt: inWeek, Completed: true},
		{Title: "b", Priority: model.PriorityLow, CreatedAt: inWeek},
		{Title: "old", Priority: model.PriorityLow, CreatedAt: outOfWeek},
	}
	for i := range tasks {
		if err := taskRepo.Create(ctx, &tasks[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	moods := []model.MoodEntry{
		{Date: inWeek, Mood: 3, Emotions: model.StringList{}},
		{Date: inWeek.AddDate(0, 0, 1), Mood: 5, Emotions: model.StringList{}},
		{Date: outOfWeek, Mood: 1, Emotions: model.StringList{}},
	}
	for i := range moods {
		if err := moodRepo.Create(ctx, &moods[i]); err != nil {
			t.Fatalf("Create mood: %v", err)
		}
	}

	report, err := svc.Generate(ctx, PeriodWeek, now)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if report.TotalTasks() != 2 {
		t.Errorf("TotalTasks = %d, want 2", report.TotalTasks())
	}
	if report.CompletedTasks() != 1 {
		t.Errorf("CompletedTasks = %d, want 1", report.CompletedTasks())
	}
	if rate := report.CompletionRate(); rate != 50 {
		t.Errorf("CompletionRate = %v, want 50", rate)
	}
	if len(report.MoodEntries) != 2 {
		t.Errorf("MoodEntries = %d, want 2", len(report.MoodEntries))
	}
	if avg := report.AverageMood(); avg != 4 {
		t.Errorf("AverageMood = %v, want 4", avg)
	}
}

func TestReport_EmptyStats(t *testing.T) {
	t.Parallel()

	report := &Report{}
	if report.CompletionRate() != 0 {
		t.Error("completion rate of an empty report must be 0")
	}
	if report.AverageMood() != 0 {
		t.Error("average mood of an empty report must be 0")
	}
}

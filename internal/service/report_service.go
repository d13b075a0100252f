package service

import (
	"context"
	"fmt"
	"time"

	"mindspace/internal/model"
	"mindspace/internal/repository"
)

// ReportPeriod selects the calendar window a report covers.
type ReportPeriod string

const (
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
)

// Report holds the records and summary statistics for one period.
type Report struct {
	Period      ReportPeriod
	StartDate   time.Time
	EndDate     time.Time
	Tasks       []model.Task
	MoodEntries []model.MoodEntry
}

// TotalTasks returns the number of tasks in the period.
func (r *Report) TotalTasks() int {
	return len(r.Tasks)
}

// CompletedTasks returns how many of them are completed.
func (r *Report) CompletedTasks() int {
	count := 0
	for _, t := range r.Tasks {
		if t.Completed {
			count++
		}
	}
	return count
}

// CompletionRate returns the completed percentage, 0 when there are no tasks.
func (r *Report) CompletionRate() float64 {
	if len(r.Tasks) == 0 {
		return 0
	}
	return float64(r.CompletedTasks()) / float64(len(r.Tasks)) * 100
}

// AverageMood returns the mean mood score, 0 when there are no entries.
func (r *Report) AverageMood() float64 {
	if len(r.MoodEntries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range r.MoodEntries {
		sum += e.Mood
	}
	return float64(sum) / float64(len(r.MoodEntries))
}

// ReportService aggregates tasks and moods over calendar periods.
type ReportService struct {
	taskRepo *repository.TaskRepository
	moodRepo *repository.MoodRepository
}

func NewReportService(taskRepo *repository.TaskRepository, moodRepo *repository.MoodRepository) *ReportService {
	return &ReportService{taskRepo: taskRepo, moodRepo: moodRepo}
}

// Generate fetches the records for the calendar week or month containing
// now and computes the summary.
func (s *ReportService) Generate(ctx context.Context, period ReportPeriod, now time.Time) (*Report, error) {
	start, end, err := PeriodRange(period, now)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	moods, err := s.moodRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &Report{
		Period:      period,
		StartDate:   start,
		EndDate:     end.AddDate(0, 0, -1),
		Tasks:       tasks,
		MoodEntries: moods,
	}, nil
}

// PeriodRange returns the half-open [start, end) range for the calendar
// week (Sunday-based) or month containing now.
func PeriodRange(period ReportPeriod, now time.Time) (start, end time.Time, err error) {
	day := model.StartOfDay(now)
	switch period {
	case PeriodWeek:
		start = day.AddDate(0, 0, -int(day.Weekday()))
		end = start.AddDate(0, 0, 7)
	case PeriodMonth:
		year, month, _ := day.Date()
		start = time.Date(year, month, 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown report period %q", period)
	}
	return start, end, nil
}

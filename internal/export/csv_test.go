package export

import (
	"strings"
	"testing"
	"time"

	"mindspace/internal/model"
	"mindspace/internal/service"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	completedAt := time.Date(2024, time.January, 3, 18, 0, 0, 0, time.Local)
	report := &service.Report{
		Period:    service.PeriodWeek,
		StartDate: created,
		EndDate:   created.AddDate(0, 0, 6),
		Tasks: []model.Task{
			{Title: "Buy milk", Priority: model.PriorityLow, CreatedAt: created},
			{Title: "Ligar \"pro\" médico", Description: "pela manhã", Priority: model.PriorityHigh,
				CreatedAt: created.AddDate(0, 0, 2), Completed: true, CompletedAt: &completedAt},
		},
		MoodEntries: []model.MoodEntry{
			{Date: created, Mood: 5, Note: "ótimo", Emotions: model.StringList{"Feliz", "Grata"}},
		},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, report); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(sb.String(), "\n")

	if lines[0] != "TASKS" {
		t.Errorf("line 0 = %q, want TASKS", lines[0])
	}
	if lines[1] != "Title,Description,Status,Created Date,Completed Date,Priority" {
		t.Errorf("task header = %q", lines[1])
	}
	if lines[2] != `"Buy milk","",Pending,2024-01-01,,low` {
		t.Errorf("task row = %q", lines[2])
	}
	if lines[3] != `"Ligar ""pro"" médico","pela manhã",Completed,2024-01-03,2024-01-03,high` {
		t.Errorf("completed task row = %q", lines[3])
	}
	if lines[4] != "" {
		t.Errorf("expected blank line between sections, got %q", lines[4])
	}
	if lines[5] != "MOOD ENTRIES" {
		t.Errorf("line 5 = %q, want MOOD ENTRIES", lines[5])
	}
	if lines[6] != "Date,Mood (1-5),Note,Emotions" {
		t.Errorf("mood header = %q", lines[6])
	}
	if lines[7] != `2024-01-01,5,"ótimo","Feliz, Grata"` {
		t.Errorf("mood row = %q", lines[7])
	}
}

func TestCSVFileName(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.Local)
	if got := CSVFileName(service.PeriodMonth, now); got != "mindspace-month-report-2024-03-09.csv" {
		t.Errorf("CSVFileName = %q", got)
	}
}

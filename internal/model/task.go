package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// WeekdaySet holds recurrence weekdays, 0 (Sunday) through 6 (Saturday),
// stored as a JSON array in sqlite.
type WeekdaySet []int

func (w WeekdaySet) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

func (w *WeekdaySet) Scan(src interface{}) error {
	if src == nil {
		*w = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	default:
		return fmt.Errorf("scan weekday set: unsupported type %T", src)
	}
}

// Contains reports whether the set includes the given weekday.
func (w WeekdaySet) Contains(day time.Weekday) bool {
	for _, d := range w {
		if d == int(day) {
			return true
		}
	}
	return false
}

// Task is a single item on the daily board. A task with ID zero is a
// virtual instance: an unsaved projection of a recurring template for
// one specific day, shown on the board before it is materialized.
type Task struct {
	ID                uint       `gorm:"primaryKey" json:"id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Completed         bool       `gorm:"index;default:false" json:"completed"`
	CreatedAt         time.Time  `gorm:"index" json:"createdAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	Priority          Priority   `gorm:"default:medium" json:"priority"`
	IsRecurrent       bool       `gorm:"index;default:false" json:"isRecurrent,omitempty"`
	RecurrenceDays    WeekdaySet `gorm:"type:text" json:"recurrenceDays,omitempty"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate,omitempty"`
}

// IsVirtual reports whether the task is an unsaved recurring instance.
func (t *Task) IsVirtual() bool {
	return t.ID == 0
}

// RecursOn reports whether a recurring template produces an instance on
// the given day: the weekday must be in the set and the recurrence end
// date, when present, must not be before the day.
func (t *Task) RecursOn(day time.Time) bool {
	if !t.IsRecurrent {
		return false
	}
	if !t.RecurrenceDays.Contains(day.Weekday()) {
		return false
	}
	if t.RecurrenceEndDate != nil && StartOfDay(*t.RecurrenceEndDate).Before(StartOfDay(day)) {
		return false
	}
	return true
}

// VirtualInstance projects a recurring template onto the given day:
// no identifier, creation date forced to the day, completion cleared.
func (t *Task) VirtualInstance(day time.Time) Task {
	instance := *t
	instance.ID = 0
	instance.CreatedAt = StartOfDay(day)
	instance.Completed = false
	instance.CompletedAt = nil
	return instance
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultResetTime is the boundary used until the user picks their own.
const DefaultResetTime = "06:00"

// AppSettings is the singleton settings record. The repository creates
// one with defaults on first run; at most one row is meaningful.
type AppSettings struct {
	ID                   uint      `gorm:"primaryKey" json:"id,omitempty"`
	DailyResetTime       string    `json:"dailyResetTime"` // "HH:MM"
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	LastTaskReset        time.Time `json:"lastTaskReset"`
}

// ParseResetTime validates an "HH:MM" string and returns its components.
func ParseResetTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}

// ResetTimeOn anchors the configured reset time-of-day onto the given day.
func (s *AppSettings) ResetTimeOn(day time.Time) (time.Time, error) {
	hour, minute, err := ParseResetTime(s.DailyResetTime)
	if err != nil {
		return time.Time{}, err
	}
	year, month, dayOfMonth := day.Date()
	return time.Date(year, month, dayOfMonth, hour, minute, 0, 0, day.Location()), nil
}

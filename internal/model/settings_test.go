package model

import (
	"testing"
	"time"
)

func TestParseResetTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		hour    int
		minute  int
		wantErr bool
	}{
		{"06:00", 6, 0, false},
		{"23:59", 23, 59, false},
		{"00:00", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"noon", 0, 0, true},
		{"6", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		hour, minute, err := ParseResetTime(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseResetTime(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if err == nil && (hour != tt.hour || minute != tt.minute) {
			t.Errorf("ParseResetTime(%q) = %d:%d, want %d:%d", tt.value, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestAppSettings_ResetTimeOn(t *testing.T) {
	t.Parallel()

	settings := &AppSettings{DailyResetTime: "06:30"}
	day := time.Date(2024, time.February, 10, 18, 45, 0, 0, time.Local)

	got, err := settings.ResetTimeOn(day)
	if err != nil {
		t.Fatalf("ResetTimeOn: %v", err)
	}
	want := time.Date(2024, time.February, 10, 6, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ResetTimeOn = %v, want %v", got, want)
	}

	settings.DailyResetTime = "bogus"
	if _, err := settings.ResetTimeOn(day); err == nil {
		t.Error("expected error for malformed reset time")
	}
}

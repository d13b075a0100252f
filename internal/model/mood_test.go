package model

import "testing"

func TestMoodLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{1, "Deprê"},
		{2, "Mal"},
		{3, "Normal"},
		{4, "Bem"},
		{5, "Incrível"},
		{0, ""},
		{6, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := MoodLabel(tt.score); got != tt.want {
			t.Errorf("MoodLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestValidMoodScore(t *testing.T) {
	t.Parallel()

	for score := 1; score <= 5; score++ {
		if !ValidMoodScore(score) {
			t.Errorf("score %d should be valid", score)
		}
	}
	for _, score := range []int{0, 6, -3, 100} {
		if ValidMoodScore(score) {
			t.Errorf("score %d should be invalid", score)
		}
	}
}

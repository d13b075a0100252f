package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a slice of short tags as a JSON array in sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}
}

// MoodEntry is one journal record on the 1-5 scale. The store allows
// more than one entry per day; readers treat the most recent one as
// authoritative.
type MoodEntry struct {
	ID       uint       `gorm:"primaryKey" json:"id,omitempty"`
	Date     time.Time  `gorm:"index" json:"date"`
	Mood     int        `gorm:"index" json:"mood"`
	Note     string     `json:"note,omitempty"`
	Emotions StringList `gorm:"type:text" json:"emotions"`
}

// MoodLabels maps mood scores 1..5 to their display labels. Index 0 is
// unused so the score indexes directly.
var MoodLabels = [6]string{"", "Deprê", "Mal", "Normal", "Bem", "Incrível"}

// MoodLabel returns the label for a score, or empty for out-of-range values.
func MoodLabel(score int) string {
	if score < 1 || score > 5 {
		return ""
	}
	return MoodLabels[score]
}

// ValidMoodScore reports whether the score is on the 1-5 scale.
func ValidMoodScore(score int) bool {
	return score >= 1 && score <= 5
}

// EmotionTags is the suggested emotion vocabulary shown alongside the
// mood picker. Free-form tags are still accepted.
var EmotionTags = []string{
	"Feliz",
	"Triste",
	"Ansiosa",
	"Calma",
	"Animada",
	"Cansada",
	"Grata",
	"Estressada",
	"Contente",
	"Frustrada",
	"Esperançosa",
	"Sobrecarregada",
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DayKeyLayout is the canonical yyyy-mm-dd form used to key chat days.
const DayKeyLayout = "2006-01-02"

// DayKey formats a time as its chat-day key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in the companion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	TS      int64  `json:"ts"` // epoch milliseconds
}

// ChatMessages stores an ordered message list as a JSON blob.
type ChatMessages []ChatMessage

func (m ChatMessages) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(ChatMessages{})
	}
	return json.Marshal(m)
}

func (m *ChatMessages) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("scan chat messages: unsupported type %T", src)
	}
}

// ChatDay owns the ordered transcript for one calendar day.
type ChatDay struct {
	ID       uint         `gorm:"primaryKey" json:"id,omitempty"`
	Date     string       `gorm:"uniqueIndex" json:"date"` // yyyy-mm-dd
	Messages ChatMessages `json:"messages"`
}

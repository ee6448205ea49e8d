package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Session struct {
	ID               string         `json:"id" db:"id"` // opaque session token
	UserID           string         `json:"user_id" db:"user_id"`
	Platform         string         `json:"platform" db:"platform"`
	Language         string         `json:"language" db:"language"`
	Context          SessionContext `json:"context" db:"context"`
	IsActive         bool           `json:"is_active" db:"is_active"`
	CreatedAt        int64          `json:"created_at" db:"created_at"`
	LatestAccessTime int64          `json:"latest_access_time" db:"latest_access_time"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.Sub(time.Unix(s.LatestAccessTime, 0)) > SESSION_TIMEOUT
}

// SessionContext carries per-conversation state across turns. Named fields
// instead of a free-form map so stale keys cannot accumulate silently.
type SessionContext struct {
	LastIntent     string `json:"last_intent,omitempty"`
	LastConfidence int    `json:"last_confidence,omitempty"`
	LastTopic      string `json:"last_topic,omitempty"`
}

// Merge applies the non-zero fields of next onto s, last write wins per field.
func (s *SessionContext) Merge(next SessionContext) {
	if next.LastIntent != "" {
		s.LastIntent = next.LastIntent
	}
	if next.LastConfidence != 0 {
		s.LastConfidence = next.LastConfidence
	}
	if next.LastTopic != "" {
		s.LastTopic = next.LastTopic
	}
}

func (s SessionContext) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *SessionContext) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		return json.Unmarshal(src, s)
	case string:
		return json.Unmarshal([]byte(src), s)
	case nil:
		*s = SessionContext{}
		return nil
	default:
		return fmt.Errorf("unsupported session context type %T", src)
	}
}

const (
	PLATFORM_WEB      = "web"
	PLATFORM_TELEGRAM = "telegram"
	PLATFORM_WHATSAPP = "whatsapp"
)

type User struct {
	ID                string `json:"id" db:"id"`
	ExternalID        string `json:"external_id" db:"external_id"`
	Platform          string `json:"platform" db:"platform"`
	PreferredLanguage string `json:"preferred_language" db:"preferred_language"`
	CreatedAt         int64  `json:"created_at" db:"created_at"`
}

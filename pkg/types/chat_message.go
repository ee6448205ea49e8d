package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type MessageRole string

const (
	USER_ROLE_USER      MessageRole = "user"
	USER_ROLE_ASSISTANT MessageRole = "assistant"
	USER_ROLE_SYSTEM    MessageRole = "system"
)

// Message is one immutable turn of a conversation. Content is always in the
// working language; the original text is retained only when translation
// actually happened.
type Message struct {
	ID               string         `json:"id" db:"id"`
	SessionID        string         `json:"session_id" db:"session_id"`
	Role             MessageRole    `json:"role" db:"role"`
	Content          string         `json:"content" db:"content"`
	OriginalContent  string         `json:"original_content,omitempty" db:"original_content"`
	OriginalLanguage string         `json:"original_language,omitempty" db:"original_language"`
	Intent           string         `json:"intent,omitempty" db:"intent"`
	Confidence       int            `json:"confidence,omitempty" db:"confidence"`
	Sources          MessageSources `json:"sources,omitempty" db:"sources"`
	CreatedAt        int64          `json:"created_at" db:"created_at"`
}

// SourceRef is the truncated retrieval evidence stored with an assistant turn.
type SourceRef struct {
	Title          string  `json:"title"`
	ContentExcerpt string  `json:"content_excerpt,omitempty"`
	Score          float64 `json:"score"`
	OriginID       string  `json:"origin_id,omitempty"`
}

type MessageSources []SourceRef

func (s MessageSources) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *MessageSources) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		return json.Unmarshal(src, s)
	case string:
		return json.Unmarshal([]byte(src), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported message sources type %T", src)
	}
}

package types

// TurnRequest is one inbound user message.
type TurnRequest struct {
	Message           string `json:"message" form:"message" binding:"required"`
	SessionToken      string `json:"session_token" form:"session_token"`
	PreferredLanguage string `json:"preferred_language" form:"preferred_language"`
	Platform          string `json:"platform" form:"platform"`
	ExternalUserID    string `json:"external_user_id" form:"external_user_id"`
}

// TurnResult is the structured outcome of one conversation turn.
type TurnResult struct {
	Response           string      `json:"response"`
	SessionToken       string      `json:"session_token"`
	DetectedLanguage   string      `json:"detected_language"`
	ResponseLanguage   string      `json:"response_language"`
	Intent             string      `json:"intent,omitempty"`
	Confidence         int         `json:"confidence"`
	Sources            []SourceRef `json:"sources"`
	NeedsEscalation    bool        `json:"needs_escalation"`
	SuggestedQuestions []string    `json:"suggested_questions"`
}

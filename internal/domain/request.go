package domain

// TurnRequest is the turn submission payload.
type TurnRequest struct {
	Message       string `json:"message"`
	ChatID        *int64 `json:"chat_id,omitempty"`
	UserTimestamp string `json:"user_timestamp,omitempty"`
	ModelType     string `json:"model_type,omitempty"`
}

// TurnResult is the flat response of a chat turn.
type TurnResult struct {
	User                string `json:"user"`
	AIResponse          string `json:"ai_response"`
	IsAuthenticated     bool   `json:"is_authenticated"`
	ModelType           string `json:"model_type"`
	Intent              string `json:"intent"`
	IntentCategory      string `json:"intent_category"`
	TimeTakenMs         int64  `json:"time_taken_ms"`
	TimeTakenFormatted  string `json:"time_taken_formatted"`
	AIResponseTimestamp string `json:"ai_response_timestamp"`
	ChatID              *int64 `json:"chat_id,omitempty"`
}

// ChatDetail is the detail-fetch response shape.
type ChatDetail struct {
	ChatID            int64         `json:"chat_id"`
	SchemaVersion     string        `json:"schema_version"`
	TotalInteractions int           `json:"total_interactions"`
	Conversation      []Interaction `json:"conversation"`
	CreatedAt         string        `json:"created_at"`
	UpdatedAt         string        `json:"updated_at"`
}

// Package domain defines the core domain models for the aibot backend.
package domain

import "time"

// SchemaVersionV2 tags interactions written by this backend. Older records
// without the tag may coexist in the same session and are filtered out on read.
const SchemaVersionV2 = "v2"

// Interaction statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// TimestampLayout is the ISO-8601 rendering used for stored and reported
// timestamps. Microsecond precision with no zone keeps new records
// lexicographically sortable next to the v2 history already persisted.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Interaction is one persisted conversational turn. Immutable once written;
// subsequent turns are appended, never edited.
type Interaction struct {
	SchemaVersion string `json:"schema_version"`

	Intent     string `json:"intent"`      // "chat" | "action"
	IntentType string `json:"intent_type"` // CHAT | UPDATE_PROFILE | ...

	UserMessage   string `json:"user_message"`
	UserTimestamp string `json:"user_timestamp"`

	AIResponse  string `json:"ai_response"`
	AITimestamp string `json:"ai_timestamp"`

	Model              string `json:"model"`
	TimeTakenMs        int64  `json:"time_taken_ms"`
	TimeTakenFormatted string `json:"time_taken_formatted"`

	ActionField *string `json:"action_field"`
	Status      string  `json:"status"`
}

// ChatSession is the ordered collection of interactions under one chat id,
// owned by one user. Conversation order is insertion order, not timestamp
// order.
type ChatSession struct {
	ChatID          int64         `json:"chat_id"`
	UserID          int64         `json:"user_id"`
	Username        string        `json:"username"`
	IsAuthenticated bool          `json:"is_authenticated"`
	Conversation    []Interaction `json:"conversation"`
	IPAddress       string        `json:"ip_address,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// V2Interactions returns only the interactions carrying the v2 schema tag.
// Legacy un-tagged records unmarshal with an empty tag and drop out here
// without erroring.
func (s *ChatSession) V2Interactions() []Interaction {
	out := make([]Interaction, 0, len(s.Conversation))
	for _, it := range s.Conversation {
		if it.SchemaVersion == SchemaVersionV2 {
			out = append(out, it)
		}
	}
	return out
}

// SidebarTitle returns the user message of the first v2 interaction in
// stored order, truncated to 80 runes. ok is false when the session has no
// v2 interaction, in which case it is omitted from the sidebar.
func (s *ChatSession) SidebarTitle() (string, bool) {
	for _, it := range s.Conversation {
		if it.SchemaVersion == SchemaVersionV2 && it.UserMessage != "" {
			title := []rune(it.UserMessage)
			if len(title) > 80 {
				title = title[:80]
			}
			return string(title), true
		}
	}
	return "", false
}

// SidebarEntry is one row of the chat sidebar listing.
type SidebarEntry struct {
	ChatID int64  `json:"chat_id"`
	Title  string `json:"title"`
}

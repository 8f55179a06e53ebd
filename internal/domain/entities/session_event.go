package entities

import "time"

type SessionEventType string

const (
	SessionEventStarted          SessionEventType = "started"
	SessionEventSectionStarted   SessionEventType = "section_started"
	SessionEventSectionCompleted SessionEventType = "section_completed"
	SessionEventCompleted        SessionEventType = "completed"
	SessionEventFailed           SessionEventType = "failed"
)

// SessionEvent is a lifecycle notification emitted while a run progresses.
type SessionEvent struct {
	SessionID string           `json:"session_id"`
	UserID    string           `json:"user_id,omitempty"`
	Type      SessionEventType `json:"type"`
	Section   string           `json:"section,omitempty"`
	Progress  int              `json:"progress"`
	Provider  string           `json:"provider,omitempty"`
	Error     string           `json:"error,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

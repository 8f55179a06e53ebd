package entities

import "time"

// SessionStatus is the lifecycle state of a generation run.
//
//	pending -> generating -> completed | failed
//	failed  -> pending (retry)
type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "pending"
	SessionStatusGenerating SessionStatus = "generating"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusFailed     SessionStatus = "failed"
)

// SectionContent is the parsed JSON object a model returned for one section.
// Only "is a JSON object" is guaranteed; call sites own their shape assumptions.
type SectionContent map[string]any

// GenerationSession is one user-initiated report run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type GenerationSession struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Idea     string         `json:"idea"`
	Answers  map[string]any `json:"answers,omitempty"`
	Branding map[string]any `json:"branding,omitempty"`

	Status       SessionStatus             `json:"status"`
	CurrentStep  string                    `json:"current_step,omitempty"`
	Progress     int                       `json:"progress"`
	Result       map[string]SectionContent `json:"result,omitempty"`
	ErrorMessage string                    `json:"error_message,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsTerminal reports whether the run has stopped.
func (s GenerationSession) IsTerminal() bool {
	return s.Status == SessionStatusCompleted || s.Status == SessionStatusFailed
}

// SessionUpdate is a partial patch. Nil fields are left untouched.
// A pointer to "" on CurrentStep or ErrorMessage clears the attribute.
// ExpectedStatus is a precondition: the patch is applied only while the
// stored status still equals it.
type SessionUpdate struct {
	ExpectedStatus *SessionStatus

	Status       *SessionStatus
	CurrentStep  *string
	Progress     *int
	Result       map[string]SectionContent
	ErrorMessage *string
}

// IsEmpty reports whether the patch would change nothing.
func (u SessionUpdate) IsEmpty() bool {
	return u.Status == nil && u.CurrentStep == nil && u.Progress == nil && u.Result == nil && u.ErrorMessage == nil
}

// Apply returns s with the patch applied. Completing a session stamps CompletedAt.
func (u SessionUpdate) Apply(s GenerationSession, now time.Time) GenerationSession {
	if u.Status != nil {
		s.Status = *u.Status
		if *u.Status == SessionStatusCompleted {
			t := now
			s.CompletedAt = &t
		}
	}
	if u.CurrentStep != nil {
		s.CurrentStep = *u.CurrentStep
	}
	if u.Progress != nil {
		s.Progress = *u.Progress
	}
	if u.Result != nil {
		s.Result = u.Result
	}
	if u.ErrorMessage != nil {
		s.ErrorMessage = *u.ErrorMessage
	}
	s.UpdatedAt = now
	return s
}

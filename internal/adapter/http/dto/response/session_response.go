package response

import (
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

type SessionResponse struct {
	ID           string                             `json:"id"`
	Idea         string                             `json:"idea"`
	Answers      map[string]any                     `json:"answers,omitempty"`
	Branding     map[string]any                     `json:"branding,omitempty"`
	Status       string                             `json:"status"`
	CurrentStep  string                             `json:"current_step,omitempty"`
	Progress     int                                `json:"progress"`
	Result       map[string]entities.SectionContent `json:"result,omitempty"`
	ErrorMessage string                             `json:"error_message,omitempty"`
	CreatedAt    time.Time                          `json:"created_at"`
	UpdatedAt    time.Time                          `json:"updated_at"`
	CompletedAt  *time.Time                         `json:"completed_at,omitempty"`
}

func FromSession(s entities.GenerationSession) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		Idea:         s.Idea,
		Answers:      s.Answers,
		Branding:     s.Branding,
		Status:       string(s.Status),
		CurrentStep:  s.CurrentStep,
		Progress:     s.Progress,
		Result:       s.Result,
		ErrorMessage: s.ErrorMessage,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		CompletedAt:  s.CompletedAt,
	}
}

// SessionSummaryResponse is the list view; the report body is left out.
type SessionSummaryResponse struct {
	ID          string     `json:"id"`
	Idea        string     `json:"idea"`
	Status      string     `json:"status"`
	CurrentStep string     `json:"current_step,omitempty"`
	Progress    int        `json:"progress"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromSessions(items []entities.GenerationSession) []SessionSummaryResponse {
	out := make([]SessionSummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SessionSummaryResponse{
			ID:          s.ID,
			Idea:        s.Idea,
			Status:      string(s.Status),
			CurrentStep: s.CurrentStep,
			Progress:    s.Progress,
			CreatedAt:   s.CreatedAt,
			CompletedAt: s.CompletedAt,
		})
	}
	return out
}

package request

import "strings"

// CreateSessionRequest starts a report run for a business idea. Answers and
// branding are free-form questionnaire output passed through to prompts.
type CreateSessionRequest struct {
	Idea     string         `json:"idea" binding:"required"`
	Answers  map[string]any `json:"answers"`
	Branding map[string]any `json:"branding"`
}

func (r CreateSessionRequest) ResolveIdea() string {
	return strings.TrimSpace(r.Idea)
}

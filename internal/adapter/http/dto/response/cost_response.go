package response

import (
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

type CostRecordResponse struct {
	SectionID    string    `json:"section_id"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	Cost         float64   `json:"cost"`
	RetryCount   int       `json:"retry_count"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

type SessionCostResponse struct {
	SessionID    string               `json:"session_id"`
	Records      []CostRecordResponse `json:"records"`
	TotalCost    float64              `json:"total_cost"`
	TotalTokens  int                  `json:"total_tokens"`
	SectionCount int                  `json:"section_count"`
}

func FromSessionCostSummary(sessionID string, s entities.SessionCostSummary) SessionCostResponse {
	records := make([]CostRecordResponse, 0, len(s.Records))
	for _, r := range s.Records {
		records = append(records, CostRecordResponse{
			SectionID:    r.SectionID,
			Provider:     r.Provider,
			Model:        r.Model,
			InputTokens:  r.InputTokens,
			OutputTokens: r.OutputTokens,
			Cost:         r.Cost,
			RetryCount:   r.RetryCount,
			DurationMs:   r.DurationMs,
			CreatedAt:    r.CreatedAt,
		})
	}
	return SessionCostResponse{
		SessionID:    sessionID,
		Records:      records,
		TotalCost:    s.TotalCost,
		TotalTokens:  s.TotalTokens,
		SectionCount: s.SectionCount,
	}
}

type ProviderCostsResponse struct {
	From      time.Time                      `json:"from"`
	To        time.Time                      `json:"to"`
	Providers []entities.ProviderCostSummary `json:"providers"`
}

type CostTrendsResponse struct {
	Days   int                       `json:"days"`
	Points []entities.CostTrendPoint `json:"points"`
}

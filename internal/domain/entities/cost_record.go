package entities

import "time"

// CostRecord is one append-only ledger entry per successfully generated section.
type CostRecord struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	SectionID    string    `json:"section_id"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	Cost         float64   `json:"cost"`
	RetryCount   int       `json:"retry_count"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// TotalTokens is input plus output tokens.
func (r CostRecord) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// SessionCostSummary aggregates the ledger for one session.
type SessionCostSummary struct {
	Records      []CostRecord `json:"records"`
	TotalCost    float64      `json:"total_cost"`
	TotalTokens  int          `json:"total_tokens"`
	SectionCount int          `json:"section_count"`
}

// ProviderCostSummary aggregates the ledger for one provider over a date range.
type ProviderCostSummary struct {
	Provider      string  `json:"provider"`
	Calls         int     `json:"calls"`
	InputTokens   int     `json:"input_tokens"`
	OutputTokens  int     `json:"output_tokens"`
	TotalCost     float64 `json:"total_cost"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
}

// CostTrendPoint is one UTC day of the cost series.
type CostTrendPoint struct {
	Date        string  `json:"date"`
	Calls       int     `json:"calls"`
	TotalTokens int     `json:"total_tokens"`
	TotalCost   float64 `json:"total_cost"`
}

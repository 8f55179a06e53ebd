package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

const (
	maxTrendDays = 365
	dayLayout    = "2006-01-02"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidTrendDays = errors.New("invalid trend days")
)

// ICostUseCase reads the cost ledger for session and admin views.
type ICostUseCase interface {
	GetCostsBySession(ctx context.Context, sessionID string) (entities.SessionCostSummary, error)
	GetCostsByProvider(ctx context.Context, from, to time.Time) ([]entities.ProviderCostSummary, error)
	GetCostTrends(ctx context.Context, days int) ([]entities.CostTrendPoint, error)
}

type CostUseCase struct {
	repo interfaces.ICostRecordRepository
	now  func() time.Time
}

var _ ICostUseCase = (*CostUseCase)(nil)

func NewCostUseCase(repo interfaces.ICostRecordRepository) *CostUseCase {
	return &CostUseCase{repo: repo, now: time.Now}
}

func (u *CostUseCase) GetCostsBySession(ctx context.Context, sessionID string) (entities.SessionCostSummary, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.SessionCostSummary{}, ErrInvalidSessionID
	}

	records, err := u.repo.ListBySessionID(ctx, sessionID)
	if err != nil {
		return entities.SessionCostSummary{}, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	out := entities.SessionCostSummary{Records: records}
	if out.Records == nil {
		out.Records = []entities.CostRecord{}
	}
	sections := make(map[string]struct{}, len(records))
	for _, r := range records {
		out.TotalCost += r.Cost
		out.TotalTokens += r.TotalTokens()
		sections[r.SectionID] = struct{}{}
	}
	out.TotalCost = roundUSD(out.TotalCost)
	out.SectionCount = len(sections)
	return out, nil
}

// GetCostsByProvider aggregates records in [from, to), most expensive first.
func (u *CostUseCase) GetCostsByProvider(ctx context.Context, from, to time.Time) ([]entities.ProviderCostSummary, error) {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return nil, ErrInvalidDateRange
	}

	records, err := u.repo.ListBetween(ctx, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}

	byProvider := map[string]*entities.ProviderCostSummary{}
	durations := map[string]int64{}
	for _, r := range records {
		agg, ok := byProvider[r.Provider]
		if !ok {
			agg = &entities.ProviderCostSummary{Provider: r.Provider}
			byProvider[r.Provider] = agg
		}
		agg.Calls++
		agg.InputTokens += r.InputTokens
		agg.OutputTokens += r.OutputTokens
		agg.TotalCost += r.Cost
		durations[r.Provider] += r.DurationMs
	}

	out := make([]entities.ProviderCostSummary, 0, len(byProvider))
	for p, agg := range byProvider {
		agg.TotalCost = roundUSD(agg.TotalCost)
		agg.AvgDurationMs = math.Round(float64(durations[p])/float64(agg.Calls)*100) / 100
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalCost != out[j].TotalCost {
			return out[i].TotalCost > out[j].TotalCost
		}
		return out[i].Provider < out[j].Provider
	})
	return out, nil
}

// GetCostTrends returns one point per UTC day for the last n days, oldest
// first, with days without records filled as zero.
func (u *CostUseCase) GetCostTrends(ctx context.Context, days int) ([]entities.CostTrendPoint, error) {
	if days <= 0 || days > maxTrendDays {
		return nil, ErrInvalidTrendDays
	}

	now := u.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)

	records, err := u.repo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]entities.CostTrendPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i).Format(dayLayout)
		points[i] = entities.CostTrendPoint{Date: d}
		index[d] = i
	}
	for _, r := range records {
		i, ok := index[r.CreatedAt.UTC().Format(dayLayout)]
		if !ok {
			continue
		}
		points[i].Calls++
		points[i].TotalTokens += r.TotalTokens()
		points[i].TotalCost += r.Cost
	}
	for i := range points {
		points[i].TotalCost = roundUSD(points[i].TotalCost)
	}
	return points, nil
}

func roundUSD(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

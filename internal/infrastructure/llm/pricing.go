package llm

import (
	"log"
	"math"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

// PricingTable prices calls from per-model USD-per-million-token rates.
type PricingTable struct {
	prices map[string]map[string]entities.ModelPrice
}

var _ interfaces.ICostCalculator = (*PricingTable)(nil)

func NewPricingTable(prices map[string]map[string]entities.ModelPrice) *PricingTable {
	return &PricingTable{prices: prices}
}

// CalculateCost rounds each component to 6 decimals, then rounds their sum.
// Unknown provider/model pairs cost zero.
func (t *PricingTable) CalculateCost(provider, model string, inputTokens, outputTokens int) entities.CostBreakdown {
	price, ok := t.prices[provider][model]
	if !ok {
		log.Printf("[llm][pricing] no price for provider=%s model=%s; recording zero cost", provider, model)
		return entities.CostBreakdown{}
	}
	in := round6(float64(inputTokens) / 1e6 * price.Input)
	out := round6(float64(outputTokens) / 1e6 * price.Output)
	return entities.CostBreakdown{
		InputCost:  in,
		OutputCost: out,
		TotalCost:  round6(in + out),
	}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

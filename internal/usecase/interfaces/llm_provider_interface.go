package interfaces

import (
	"context"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

// ILLMProvider wraps one vendor's chat-completion endpoint.
//
// Application failures (non-2xx, empty content, missing key) come back as
// Success=false. Only transport failures are returned as error.
type ILLMProvider interface {
	ID() string
	Generate(ctx context.Context, req entities.LLMRequest) (entities.LLMResponse, error)
}

// IProviderRegistry resolves providers and their static configuration.
type IProviderRegistry interface {
	GetProvider(id string) (ILLMProvider, error)
	Config(id string) (entities.ProviderConfig, error)
	PriorityOrder() []string
}

// ICostCalculator prices a call from token counts.
type ICostCalculator interface {
	CalculateCost(provider, model string, inputTokens, outputTokens int) entities.CostBreakdown
}

// IRateLimiter enforces the minimum delay between calls to the same provider.
// Acquire blocks until a call is permitted; Record marks a finished call.
type IRateLimiter interface {
	Acquire(ctx context.Context, provider string) error
	Record(provider string)
}

// IPromptBuilder renders the prompts of one section.
type IPromptBuilder interface {
	Build(sectionID string, gc *entities.GenerationContext) (entities.Prompt, error)
}

package llm

import (
	"errors"
	"fmt"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

var ErrUnknownProvider = errors.New("unknown llm provider")

// Registry maps provider ids to adapters and their static configuration.
type Registry struct {
	priority  []string
	configs   map[string]entities.ProviderConfig
	providers map[string]interfaces.ILLMProvider
}

var _ interfaces.IProviderRegistry = (*Registry)(nil)

// NewRegistry builds one OpenAI-compatible adapter per catalog entry.
func NewRegistry(c *Catalog, opts ...ProviderOption) *Registry {
	providers := make(map[string]interfaces.ILLMProvider, len(c.Providers))
	for _, cfg := range c.Providers {
		providers[cfg.ID] = NewOpenAICompatibleProvider(cfg, opts...)
	}
	return NewRegistryWithProviders(c, providers)
}

// NewRegistryWithProviders uses caller-supplied adapters, keyed by provider id.
func NewRegistryWithProviders(c *Catalog, providers map[string]interfaces.ILLMProvider) *Registry {
	configs := make(map[string]entities.ProviderConfig, len(c.Providers))
	for _, cfg := range c.Providers {
		configs[cfg.ID] = cfg
	}
	priority := make([]string, len(c.Priority))
	copy(priority, c.Priority)
	return &Registry{priority: priority, configs: configs, providers: providers}
}

func (r *Registry) GetProvider(id string) (interfaces.ILLMProvider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
	return p, nil
}

func (r *Registry) Config(id string) (entities.ProviderConfig, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return entities.ProviderConfig{}, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
	return cfg, nil
}

// PriorityOrder returns the failover order. The slice is a copy.
func (r *Registry) PriorityOrder() []string {
	out := make([]string, len(r.priority))
	copy(out, r.priority)
	return out
}

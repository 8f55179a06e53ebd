package llm

import (
	_ "embed"
	"fmt"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the static provider and pricing configuration.
type Catalog struct {
	Priority  []string                                  `yaml:"priority"`
	Providers []entities.ProviderConfig                 `yaml:"providers"`
	Pricing   map[string]map[string]entities.ModelPrice `yaml:"pricing"`
}

// DefaultCatalog decodes the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse provider catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every prioritized provider is configured exactly once.
func (c *Catalog) Validate() error {
	if len(c.Priority) == 0 {
		return fmt.Errorf("provider catalog: empty priority list")
	}
	byID := make(map[string]entities.ProviderConfig, len(c.Providers))
	for _, p := range c.Providers {
		if p.ID == "" || p.BaseURL == "" || p.APIKeyEnv == "" || p.Models.Primary == "" {
			return fmt.Errorf("provider catalog: incomplete provider %q", p.ID)
		}
		if _, dup := byID[p.ID]; dup {
			return fmt.Errorf("provider catalog: duplicate provider %q", p.ID)
		}
		byID[p.ID] = p
	}
	for _, id := range c.Priority {
		if _, ok := byID[id]; !ok {
			return fmt.Errorf("provider catalog: priority names unknown provider %q", id)
		}
	}
	return nil
}

// OverridePriority replaces the failover order, e.g. from LLM_PROVIDER_PRIORITY.
// An empty list keeps the catalog order.
func (c *Catalog) OverridePriority(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	prev := c.Priority
	c.Priority = append([]string(nil), ids...)
	if err := c.Validate(); err != nil {
		c.Priority = prev
		return err
	}
	return nil
}

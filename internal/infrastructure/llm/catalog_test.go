package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, []string{"openrouter", "groq", "together", "openai"}, cat.Priority)
	for _, p := range cat.Providers {
		prices, ok := cat.Pricing[p.ID]
		require.True(t, ok, "provider %s has no pricing", p.ID)
		_, ok = prices[p.Models.Primary]
		assert.True(t, ok, "primary model of %s is not priced", p.ID)
	}
}

func TestParseCatalog_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty priority":   "providers: []",
		"unknown priority": "priority: [ghost]\nproviders: []",
		"incomplete":       "priority: [a]\nproviders:\n  - id: a\n",
		"duplicate": `priority: [a]
providers:
  - {id: a, base_url: http://x, api_key_env: A, models: {primary: m}}
  - {id: a, base_url: http://y, api_key_env: A, models: {primary: m}}
`,
		"not yaml": "priority: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestCatalog_OverridePriority(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	require.NoError(t, cat.OverridePriority(nil))
	assert.Equal(t, []string{"openrouter", "groq", "together", "openai"}, cat.Priority)

	require.NoError(t, cat.OverridePriority([]string{"groq", "openai"}))
	assert.Equal(t, []string{"groq", "openai"}, cat.Priority)

	assert.Error(t, cat.OverridePriority([]string{"groq", "mistral"}))
	assert.Equal(t, []string{"groq", "openai"}, cat.Priority)
}

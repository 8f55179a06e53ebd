package prompts

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tacoContext() *entities.GenerationContext {
	return &entities.GenerationContext{
		Idea: "A gourmet taco truck serving office parks at lunch",
		Answers: map[string]any{
			"target_market": "Office workers aged 25-45",
			"budget":        50000,
			"location":      "Austin, TX",
		},
		Branding: map[string]any{"colors": []string{"orange", "teal"}},
		Sections: map[string]entities.SectionContent{},
	}
}

func TestCatalog_BuildEverySection(t *testing.T) {
	cat, err := NewCatalog()
	require.NoError(t, err)

	gc := tacoContext()
	for _, s := range entities.Sections() {
		for _, dep := range s.DependsOn {
			gc.Sections[dep] = entities.SectionContent{"marker": "from-" + dep}
		}
	}

	for _, s := range entities.Sections() {
		t.Run(s.ID, func(t *testing.T) {
			p, err := cat.Build(s.ID, gc)
			require.NoError(t, err)
			assert.NotEmpty(t, p.System)
			assert.Contains(t, p.System, "JSON")
			assert.Contains(t, p.User, "A gourmet taco truck")
			assert.Contains(t, p.User, "EXAMPLE JSON STRUCTURE")
			for _, dep := range s.DependsOn {
				assert.Contains(t, p.User, `"from-`+dep+`"`, "user prompt of %s must embed %s", s.ID, dep)
			}
		})
	}
}

func TestCatalog_Preamble(t *testing.T) {
	cat, err := NewCatalog()
	require.NoError(t, err)

	p, err := cat.Build(entities.SectionMarket, tacoContext())
	require.NoError(t, err)

	budget := strings.Index(p.User, "- Budget: 50000")
	location := strings.Index(p.User, "- Location: Austin, TX")
	target := strings.Index(p.User, "- Target market: Office workers aged 25-45")
	require.True(t, budget >= 0 && location >= 0 && target >= 0, p.User)
	assert.True(t, budget < location && location < target, "answers must be sorted by key")
	assert.Contains(t, p.User, `- Colors: ["orange","teal"]`)
}

func TestCatalog_SystemPromptIsStatic(t *testing.T) {
	cat, err := NewCatalog()
	require.NoError(t, err)

	a, err := cat.Build(entities.SectionFinancial, tacoContext())
	require.NoError(t, err)
	b, err := cat.Build(entities.SectionFinancial, &entities.GenerationContext{Idea: "Something else entirely"})
	require.NoError(t, err)
	assert.Equal(t, a.System, b.System)
	assert.NotEqual(t, a.User, b.User)
}

func TestCatalog_MissingPriorRendersEmptyObject(t *testing.T) {
	cat, err := NewCatalog()
	require.NoError(t, err)

	p, err := cat.Build(entities.SectionCustomers, tacoContext())
	require.NoError(t, err)
	assert.Contains(t, p.User, "MARKET RESEARCH:\n{}")
}

func TestCatalog_UnknownSection(t *testing.T) {
	cat, err := NewCatalog()
	require.NoError(t, err)

	_, err = cat.Build("appendix", tacoContext())
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestPromptData_PriorRejectsUndeclaredDependency(t *testing.T) {
	sec, _ := entities.SectionByID(entities.SectionCustomers)
	d := newPromptData(sec, &entities.GenerationContext{
		Sections: map[string]entities.SectionContent{"financial": {"x": 1.0}},
	})

	_, err := d.Prior("financial")
	assert.Error(t, err)

	out, err := d.Prior("market")
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestPromptData_PriorEncodesJSON(t *testing.T) {
	sec, _ := entities.SectionByID(entities.SectionCustomers)
	d := newPromptData(sec, &entities.GenerationContext{
		Sections: map[string]entities.SectionContent{"market": {"growthRate": "8%"}},
	})

	out, err := d.Prior("market")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "8%", decoded["growthRate"])
}

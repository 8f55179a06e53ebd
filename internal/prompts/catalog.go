// Package prompts renders the system and user prompts of every report section
// from embedded text/template files.
package prompts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"text/template"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	ErrUnknownSection = errors.New("unknown report section")
	ErrMissingPrompt  = errors.New("missing section prompt")
)

// Catalog builds section prompts. Safe for concurrent use.
type Catalog struct {
	tmpl *template.Template
}

var _ interfaces.IPromptBuilder = (*Catalog)(nil)

// NewCatalog parses the embedded templates and checks every section has a
// system and a user prompt.
func NewCatalog() (*Catalog, error) {
	tmpl, err := template.New("sections").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse section templates: %w", err)
	}
	for _, s := range entities.Sections() {
		for _, kind := range []string{"system", "user"} {
			if tmpl.Lookup(s.ID+"."+kind) == nil {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingPrompt, s.ID, kind)
			}
		}
	}
	return &Catalog{tmpl: tmpl}, nil
}

// Build renders the prompts of one section against the run context.
func (c *Catalog) Build(sectionID string, gc *entities.GenerationContext) (entities.Prompt, error) {
	sec, ok := entities.SectionByID(sectionID)
	if !ok {
		return entities.Prompt{}, fmt.Errorf("%w: %q", ErrUnknownSection, sectionID)
	}
	data := newPromptData(sec, gc)

	system, err := c.render(sectionID+".system", data)
	if err != nil {
		return entities.Prompt{}, err
	}
	user, err := c.render(sectionID+".user", data)
	if err != nil {
		return entities.Prompt{}, err
	}
	return entities.Prompt{System: system, User: user}, nil
}

func (c *Catalog) render(name string, data promptData) (string, error) {
	t := c.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingPrompt, name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

type field struct {
	Label string
	Value string
}

type promptData struct {
	Idea     string
	Answers  []field
	Branding []field

	section entities.SectionSpec
	prior   map[string]entities.SectionContent
}

func newPromptData(sec entities.SectionSpec, gc *entities.GenerationContext) promptData {
	d := promptData{section: sec}
	if gc == nil {
		return d
	}
	d.Idea = strings.TrimSpace(gc.Idea)
	d.Answers = formatFields(gc.Answers)
	d.Branding = formatFields(gc.Branding)
	d.prior = gc.Sections
	return d
}

// Prior embeds the JSON of an earlier section. Only sections the current one
// declares in DependsOn may be referenced; missing output renders as {}.
func (d promptData) Prior(id string) (string, error) {
	if !slices.Contains(d.section.DependsOn, id) {
		return "", fmt.Errorf("section %s does not depend on %s", d.section.ID, id)
	}
	content, ok := d.prior[id]
	if !ok || content == nil {
		return "{}", nil
	}
	b, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", id, err)
	}
	return string(b), nil
}

// formatFields sorts by key so prompts are stable across runs.
func formatFields(m map[string]any) []field {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]field, 0, len(keys))
	for _, k := range keys {
		v := formatValue(m[k])
		if v == "" {
			continue
		}
		out = append(out, field{Label: humanize(k), Value: v})
	}
	return out
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

// humanize turns "target_market" into "Target market".
func humanize(key string) string {
	s := strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(key))
	if s == "" {
		return key
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

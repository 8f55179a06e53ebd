package usecase

import (
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

const parsePreviewLimit = 200

var fencedJSONBlock = regexp.MustCompile("(?s)```(?:json|JSON)\\s*(.*?)```")

var errNotJSONObject = errors.New("not a JSON object")

// extractJSON pulls a JSON object out of a model reply. Strategies, in order:
// the whole text, a ```json fenced block, the span from the first '{' to the
// last '}', then every balanced brace-delimited candidate.
func extractJSON(provider, text string) (entities.SectionContent, error) {
	trimmed := strings.TrimSpace(text)

	if obj, err := parseObject(trimmed); err == nil {
		return obj, nil
	}

	if m := fencedJSONBlock.FindStringSubmatch(trimmed); m != nil {
		if obj, err := parseObject(strings.TrimSpace(m[1])); err == nil {
			return obj, nil
		}
	}

	if first, last := strings.Index(trimmed, "{"), strings.LastIndex(trimmed, "}"); first >= 0 && last > first {
		if obj, err := parseObject(trimmed[first : last+1]); err == nil {
			return obj, nil
		}
	}

	for _, candidate := range balancedObjects(trimmed) {
		if obj, err := parseObject(candidate); err == nil {
			return obj, nil
		}
	}

	return nil, &ParseError{Provider: provider, Preview: preview(trimmed, parsePreviewLimit)}
}

func parseObject(s string) (entities.SectionContent, error) {
	if s == "" {
		return nil, errNotJSONObject
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotJSONObject
	}
	return entities.SectionContent(obj), nil
}

// balancedObjects returns every substring that opens with '{' and closes at
// its matching '}', skipping braces inside JSON strings. Pairs are collected
// in one stack pass; outer candidates come before the objects nested in them.
// Quotes outside any open brace are prose and do not start strings.
func balancedObjects(s string) []string {
	type span struct{ start, end int }
	var (
		open     []int
		spans    []span
		inString bool
		escaped  bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = len(open) > 0
		case '{':
			open = append(open, i)
		case '}':
			if len(open) == 0 {
				continue
			}
			spans = append(spans, span{start: open[len(open)-1], end: i})
			open = open[:len(open)-1]
		}
	}

	sort.Slice(spans, func(a, b int) bool { return spans[a].start < spans[b].start })
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, s[sp.start:sp.end+1])
	}
	return out
}

// preview truncates to at most limit bytes without splitting a rune.
func preview(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

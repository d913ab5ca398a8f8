package solver

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	defaultIcon  = "fas fa-lightbulb"
	fallbackIcon = "fas fa-robot"
)

// ParseSolutions converts vendor reply text into typed solutions. Replies are
// expected to contain a JSON array, possibly wrapped in prose; when neither a
// direct parse nor an extracted span works, the raw text is wrapped in a
// single synthetic record. This never fails: the caller always gets a usable
// collection, with the status flag saying how degraded it is.
func ParseSolutions(text string) ([]Solution, ParseStatus) {
	var parsed []Solution
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		return normalizeSolutions(parsed), StatusParsed
	}
	if span, ok := extractArray(text); ok {
		if err := json.Unmarshal([]byte(span), &parsed); err == nil {
			return normalizeSolutions(parsed), StatusExtracted
		}
	}
	return []Solution{{
		Title:   "AI Solution Approach",
		Content: text,
		Icon:    fallbackIcon,
		IsAI:    true,
	}}, StatusFallback
}

// ParseReframings converts vendor reply text into the reframing statements.
// Same degradation ladder as ParseSolutions; the fallback is a one-element
// sequence holding the raw text.
func ParseReframings(text string) ([]string, ParseStatus) {
	var parsed []string
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		return parsed, StatusParsed
	}
	if span, ok := extractArray(text); ok {
		if err := json.Unmarshal([]byte(span), &parsed); err == nil {
			return parsed, StatusExtracted
		}
	}
	return []string{text}, StatusFallback
}

// extractArray returns the greedy first-'['-to-last-']' span of the text.
func extractArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// normalizeSolutions substitutes defaults for missing fields and forces the
// AI-origin flag on every record.
func normalizeSolutions(in []Solution) []Solution {
	out := make([]Solution, len(in))
	for i, s := range in {
		if s.Title == "" {
			s.Title = fmt.Sprintf("Solution %d", i+1)
		}
		if s.Icon == "" {
			s.Icon = defaultIcon
		}
		s.IsAI = true
		out[i] = s
	}
	return out
}

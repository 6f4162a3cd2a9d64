// Package extract enforces the structured output contracts of the LLM
// extractors: typed schemas, robust JSON recovery, and safe timeouts.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError is raised when a response survives none of the recovery
// stages.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	raw := e.Raw
	if len(raw) > 200 {
		raw = raw[:200] + "..."
	}
	return fmt.Sprintf("failed to parse structured output: %v (raw: %q)", e.Err, raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// RecoverJSON parses a model response into v, tolerating the usual
// wrappings: plain JSON, JSON inside a fenced code block, a JSON object
// embedded in prose, and double-encoded JSON strings. Each stage is
// tried in order; failure of all stages yields ParseError.
func RecoverJSON(text string, v any) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ParseError{Raw: text, Err: fmt.Errorf("empty response")}
	}

	// Plain JSON.
	firstErr := json.Unmarshal([]byte(trimmed), v)
	if firstErr == nil {
		return nil
	}

	// Fenced code block.
	if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), v); err == nil {
			return nil
		}
	}

	// First JSON object embedded in arbitrary prose.
	if obj := firstJSONObject(trimmed); obj != "" {
		if err := json.Unmarshal([]byte(obj), v); err == nil {
			return nil
		}
	}

	// Double-encoded: a JSON string whose content is the document.
	var inner string
	if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(inner)), v); err == nil {
			return nil
		}
	}

	return &ParseError{Raw: text, Err: firstErr}
}

// firstJSONObject extracts the first balanced {...} span, respecting
// strings and escapes.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

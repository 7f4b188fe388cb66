package llm

import (
	"encoding/json"
	"strings"
)

// cleanJSONString drops surrounding whitespace and markdown code fences.
func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```JSON")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// parseItinerary decodes provider text that must hold a single JSON object.
func parseItinerary(provider, text string) (Itinerary, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(cleanJSONString(text)), &doc); err != nil {
		return nil, &UpstreamParseError{Provider: provider, Message: "Failed to parse LLM JSON", Err: err}
	}
	if doc == nil {
		return nil, &UpstreamParseError{Provider: provider, Message: "LLM JSON is not an object"}
	}
	return Itinerary(doc), nil
}

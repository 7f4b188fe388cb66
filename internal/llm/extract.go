package llm

import (
	"encoding/json"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
)

// Family names a provider response shape.
type Family string

const (
	FamilyDashScope      Family = "dashscope"
	FamilyChatCompletion Family = "chat_completion"
)

// Extract pulls the generated text out of a raw provider body.
// ok is false when no non-blank text could be found.
func Extract(family Family, body []byte) (string, bool) {
	switch family {
	case FamilyDashScope:
		return ExtractDashScopeText(body)
	case FamilyChatCompletion:
		var resp openai.ChatCompletionResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", false
		}
		return ExtractChatCompletionText(resp)
	default:
		return "", false
	}
}

// ExtractDashScopeText probes the DashScope output object in priority order:
// output.text, then each of output.choices, then each of output.results.
func ExtractDashScopeText(body []byte) (string, bool) {
	output := gjson.GetBytes(body, "output")
	if !output.IsObject() {
		return "", false
	}

	if s, ok := stringOrFirstString(output.Get("text")); ok {
		return s, true
	}

	for _, choice := range arrayOf(output.Get("choices")) {
		if !choice.IsObject() {
			continue
		}
		if message := choice.Get("message"); message.IsObject() {
			if s, ok := candidateText(message.Get("content")); ok {
				return s, true
			}
		}
		for _, key := range []string{"content", "text"} {
			if s, ok := candidateText(choice.Get(key)); ok {
				return s, true
			}
		}
	}

	for _, result := range arrayOf(output.Get("results")) {
		if !result.IsObject() {
			continue
		}
		for _, key := range []string{"text", "content", "completion", "result"} {
			if s, ok := candidateText(result.Get(key)); ok {
				return s, true
			}
		}
	}
	return "", false
}

// DashScopeOutputKeys returns the keys of the output object, or ok=false when there is none.
func DashScopeOutputKeys(body []byte) ([]string, bool) {
	output := gjson.GetBytes(body, "output")
	if !output.IsObject() {
		return nil, false
	}
	keys := []string{}
	output.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys, true
}

// ExtractChatCompletionText returns choices[0].message.content when it is non-blank.
func ExtractChatCompletionText(resp openai.ChatCompletionResponse) (string, bool) {
	if len(resp.Choices) == 0 {
		return "", false
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", false
	}
	return content, true
}

// stringOrFirstString accepts a non-blank string, or the first non-blank string item of a list.
func stringOrFirstString(r gjson.Result) (string, bool) {
	if s, ok := nonBlankString(r); ok {
		return s, true
	}
	for _, item := range arrayOf(r) {
		if s, ok := nonBlankString(item); ok {
			return s, true
		}
	}
	return "", false
}

// candidateText accepts a non-blank string, or the first usable item of a list.
func candidateText(r gjson.Result) (string, bool) {
	if s, ok := nonBlankString(r); ok {
		return s, true
	}
	for _, item := range arrayOf(r) {
		if s, ok := nonBlankString(item); ok {
			return s, true
		}
		if item.IsObject() {
			if s, ok := nonBlankString(item.Get("text")); ok {
				return s, true
			}
			if s, ok := nonBlankString(item.Get("content")); ok {
				return s, true
			}
		}
	}
	return "", false
}

func nonBlankString(r gjson.Result) (string, bool) {
	if r.Type != gjson.String || strings.TrimSpace(r.Str) == "" {
		return "", false
	}
	return r.Str, true
}

// arrayOf avoids gjson's habit of wrapping scalars into one-element arrays.
func arrayOf(r gjson.Result) []gjson.Result {
	if !r.IsArray() {
		return nil
	}
	return r.Array()
}

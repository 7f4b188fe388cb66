package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel    = "gpt-4o-mini"
	openAILabel           = "OpenAI"

	openAISystemPrompt = "You are a travel planning assistant that outputs ONLY JSON."
)

type openAIProvider struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
	timeout    time.Duration
}

func (p *openAIProvider) Name() string { return ProviderOpenAI }

// baseURL converts a full chat-completions URL into the client base URL.
func baseURL(endpoint string) string {
	return strings.TrimSuffix(strings.TrimRight(endpoint, "/"), "/chat/completions")
}

func (p *openAIProvider) Generate(ctx context.Context, intent PlanIntent) (Itinerary, error) {
	cfg := openai.DefaultConfig(p.apiKey)
	cfg.BaseURL = baseURL(p.endpoint)
	cfg.HTTPClient = p.httpClient
	client := openai.NewClientWithConfig(cfg)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(intent)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		return nil, openAIError(err)
	}

	text, ok := ExtractChatCompletionText(resp)
	if !ok {
		return nil, &UpstreamParseError{Provider: openAILabel, Message: "OpenAI response missing content."}
	}
	return parseItinerary(openAILabel, text)
}

func openAIError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &UpstreamParseError{Provider: openAILabel, Message: "OpenAI returned a non-JSON body", Err: err}
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamTransportError{Provider: openAILabel, StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamTransportError{Provider: openAILabel, StatusCode: reqErr.HTTPStatusCode, Body: string(reqErr.Body), Err: err}
	}
	return &UpstreamTransportError{Provider: openAILabel, Err: err}
}

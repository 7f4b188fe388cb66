package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"
	geminiLabel        = "Gemini"
)

type geminiProvider struct {
	apiKey   string
	endpoint string
	model    string
	timeout  time.Duration
}

func (p *geminiProvider) Name() string { return ProviderGemini }

func (p *geminiProvider) Generate(ctx context.Context, intent PlanIntent) (Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	opts := []option.ClientOption{option.WithAPIKey(p.apiKey)}
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, &UpstreamTransportError{Provider: geminiLabel, Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(intent)))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return nil, &UpstreamTransportError{Provider: geminiLabel, StatusCode: apiErr.Code, Body: apiErr.Message, Err: err}
		}
		return nil, &UpstreamTransportError{Provider: geminiLabel, Err: err}
	}

	var text strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil, &UpstreamParseError{Provider: geminiLabel, Message: "Gemini response missing content."}
	}
	return parseItinerary(geminiLabel, text.String())
}

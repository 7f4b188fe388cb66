package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultDashScopeEndpoint = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"
	defaultDashScopeModel    = "qwen-turbo"
	dashScopeLabel           = "DashScope"
)

type dashScopeRequest struct {
	Model      string              `json:"model"`
	Input      dashScopeInput      `json:"input"`
	Parameters dashScopeParameters `json:"parameters"`
}

type dashScopeInput struct {
	Prompt string `json:"prompt"`
}

type dashScopeParameters struct {
	ResultFormat string `json:"result_format"`
}

type dashScopeProvider struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
	timeout    time.Duration
}

func (p *dashScopeProvider) Name() string { return ProviderDashScope }

func (p *dashScopeProvider) Generate(ctx context.Context, intent PlanIntent) (Itinerary, error) {
	payload, err := json.Marshal(dashScopeRequest{
		Model:      p.model,
		Input:      dashScopeInput{Prompt: BuildPrompt(intent)},
		Parameters: dashScopeParameters{ResultFormat: "json"},
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &UpstreamTransportError{Provider: dashScopeLabel, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamTransportError{Provider: dashScopeLabel, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamTransportError{Provider: dashScopeLabel, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &UpstreamTransportError{Provider: dashScopeLabel, StatusCode: resp.StatusCode, Body: string(body)}
	}
	if !gjson.ValidBytes(body) {
		return nil, &UpstreamParseError{Provider: dashScopeLabel, Message: "DashScope returned a non-JSON body"}
	}

	text, ok := Extract(FamilyDashScope, body)
	if !ok {
		keys, hasOutput := DashScopeOutputKeys(body)
		seen := "n/a"
		if hasOutput {
			seen = formatKeys(keys)
		}
		return nil, &UpstreamParseError{
			Provider: dashScopeLabel,
			Message:  fmt.Sprintf("DashScope response missing text field (output keys: %s)", seen),
			Keys:     keys,
		}
	}
	return parseItinerary(dashScopeLabel, text)
}

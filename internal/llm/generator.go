// Package llm turns a travel request into a generated itinerary document.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderMock      = "mock"
	ProviderDashScope = "dashscope"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"

	DefaultTimeout = 45 * time.Second
)

// Provider is one generation backend.
type Provider interface {
	Name() string
	Generate(ctx context.Context, intent PlanIntent) (Itinerary, error)
}

// Generator resolves a Provider per call from immutable Settings and request Overrides.
type Generator struct {
	settings   Settings
	httpClient *http.Client
	timeout    time.Duration
	now        func() time.Time
}

type Option func(*Generator)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Generator) { g.httpClient = c }
}

func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(settings Settings, opts ...Option) *Generator {
	g := &Generator{
		settings: settings,
		timeout:  DefaultTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.httpClient == nil {
		g.httpClient = &http.Client{Timeout: g.timeout}
	}
	return g
}

// Resolve applies overrides to the process settings and picks the provider variant.
func (g *Generator) Resolve(overrides Overrides) (Provider, error) {
	name := strings.ToLower(firstNonEmpty(overrides.Provider, g.settings.Provider, ProviderMock))
	apiKey := firstNonEmpty(overrides.APIKey, g.settings.APIKey)
	endpoint := firstNonEmpty(overrides.Endpoint, g.settings.Endpoint)

	// The configured model belongs to the configured provider; a switched provider gets its own default.
	model := strings.TrimSpace(overrides.Model)
	if model == "" && strings.EqualFold(name, strings.TrimSpace(g.settings.Provider)) {
		model = strings.TrimSpace(g.settings.Model)
	}

	switch name {
	case ProviderMock:
		return &mockProvider{now: g.now}, nil
	case ProviderDashScope:
		if apiKey == "" {
			return nil, &ConfigurationError{Message: "DashScope API key missing (LLM_API_KEY)."}
		}
		return &dashScopeProvider{
			apiKey:     apiKey,
			endpoint:   firstNonEmpty(endpoint, defaultDashScopeEndpoint),
			model:      firstNonEmpty(model, defaultDashScopeModel),
			httpClient: g.httpClient,
			timeout:    g.timeout,
		}, nil
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, &ConfigurationError{Message: "OpenAI API key missing (LLM_API_KEY)."}
		}
		return &openAIProvider{
			apiKey:     apiKey,
			endpoint:   firstNonEmpty(endpoint, defaultOpenAIEndpoint),
			model:      firstNonEmpty(model, defaultOpenAIModel),
			httpClient: g.httpClient,
			timeout:    g.timeout,
		}, nil
	case ProviderGemini:
		if apiKey == "" {
			return nil, &ConfigurationError{Message: "Gemini API key missing (LLM_API_KEY)."}
		}
		return &geminiProvider{
			apiKey:   apiKey,
			endpoint: endpoint,
			model:    firstNonEmpty(model, defaultGeminiModel),
			timeout:  g.timeout,
		}, nil
	default:
		return nil, &ConfigurationError{Message: fmt.Sprintf("Unsupported LLM provider: %s", name)}
	}
}

// Generate makes at most one upstream call. Errors are *ConfigurationError,
// *UpstreamTransportError or *UpstreamParseError.
func (g *Generator) Generate(ctx context.Context, intent PlanIntent, overrides Overrides) (Itinerary, error) {
	provider, err := g.Resolve(overrides)
	if err != nil {
		return nil, err
	}
	return provider.Generate(ctx, intent)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

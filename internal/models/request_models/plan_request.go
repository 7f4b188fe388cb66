package request_models

import (
	"cloud.google.com/go/civil"

	"wayfarer/internal/llm"
)

// PlanGenerationRequest is a PlanIntent plus storage-only fields and optional provider overrides.
type PlanGenerationRequest struct {
	llm.PlanIntent

	VoiceTranscript *string `json:"voice_transcript"`
	Notes           *string `json:"notes"`

	LLMProvider string `json:"llm_provider"`
	LLMModel    string `json:"llm_model"`
	LLMEndpoint string `json:"llm_endpoint"`
	LLMAPIKey   string `json:"llm_api_key"`
}

// Overrides keeps only the override fields the caller actually filled in.
func (r PlanGenerationRequest) Overrides() llm.Overrides {
	return llm.Overrides{
		Provider: r.LLMProvider,
		APIKey:   r.LLMAPIKey,
		Endpoint: r.LLMEndpoint,
		Model:    r.LLMModel,
	}
}

// TravelPlanUpdateRequest is a partial update; nil fields are left untouched.
type TravelPlanUpdateRequest struct {
	Title           *string        `json:"title" binding:"omitempty,min=1,max=255"`
	StartDate       *civil.Date    `json:"start_date"`
	EndDate         *civil.Date    `json:"end_date"`
	DurationDays    *int           `json:"duration_days" binding:"omitempty,gt=0"`
	Travelers       *int           `json:"travelers" binding:"omitempty,gt=0"`
	BudgetAmount    *float64       `json:"budget_amount" binding:"omitempty,gte=0"`
	Currency        *string        `json:"currency" binding:"omitempty,min=3,max=8"`
	Preferences     map[string]any `json:"preferences"`
	Itinerary       map[string]any `json:"itinerary"`
	BudgetBreakdown map[string]any `json:"budget_breakdown"`
	Notes           *string        `json:"notes"`
}

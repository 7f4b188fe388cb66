package response_models

import (
	"encoding/json"
	"time"

	"cloud.google.com/go/civil"

	"wayfarer/internal/models/db_models"
)

type TravelPlanResponse struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	Title           string            `json:"title"`
	Destination     string            `json:"destination"`
	StartDate       *civil.Date       `json:"start_date"`
	EndDate         *civil.Date       `json:"end_date"`
	DurationDays    *int              `json:"duration_days"`
	Travelers       *int              `json:"travelers"`
	BudgetAmount    *float64          `json:"budget_amount"`
	Currency        string            `json:"currency"`
	Preferences     json.RawMessage   `json:"preferences"`
	Itinerary       json.RawMessage   `json:"itinerary"`
	BudgetBreakdown json.RawMessage   `json:"budget_breakdown"`
	Notes           *string           `json:"notes"`
	RawPlanText     *string           `json:"raw_plan_text"`
	CreatedAt       int64             `json:"created_at"`
	UpdatedAt       int64             `json:"updated_at"`
	Expenses        []ExpenseResponse `json:"expenses,omitempty"`
}

type PlanGenerationResponse struct {
	Plan TravelPlanResponse `json:"plan"`
}

func NewTravelPlanResponse(p db_models.TravelPlan) TravelPlanResponse {
	out := TravelPlanResponse{
		ID:              p.ID.String(),
		OwnerID:         p.OwnerID.String(),
		Title:           p.Title,
		Destination:     p.Destination,
		StartDate:       civilDate(p.StartDate),
		EndDate:         civilDate(p.EndDate),
		DurationDays:    p.DurationDays,
		Travelers:       p.Travelers,
		BudgetAmount:    p.BudgetAmount,
		Currency:        p.Currency,
		Preferences:     rawOrNull(p.Preferences),
		Itinerary:       rawOrNull(p.Itinerary),
		BudgetBreakdown: rawOrNull(p.BudgetBreakdown),
		Notes:           p.Notes,
		RawPlanText:     p.RawPlanText,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	for _, e := range p.Expenses {
		out.Expenses = append(out.Expenses, NewExpenseResponse(e))
	}
	return out
}

func civilDate(t *time.Time) *civil.Date {
	if t == nil {
		return nil
	}
	d := civil.DateOf(*t)
	return &d
}

func rawOrNull(b []byte) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}

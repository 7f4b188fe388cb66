package response_models

import (
	"time"

	"wayfarer/internal/models/db_models"
)

type ExpenseResponse struct {
	ID         string    `json:"id"`
	PlanID     string    `json:"plan_id"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Note       *string   `json:"note"`
	IncurredAt time.Time `json:"incurred_at"`
}

func NewExpenseResponse(e db_models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID.String(),
		PlanID:     e.PlanID.String(),
		Category:   e.Category,
		Amount:     e.Amount,
		Currency:   e.Currency,
		Note:       e.Note,
		IncurredAt: e.IncurredAt,
	}
}

package request_models

import "time"

type ExpenseCreateRequest struct {
	Category   string     `json:"category" binding:"required,max=100"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	Currency   string     `json:"currency" binding:"omitempty,min=3,max=8"`
	Note       *string    `json:"note"`
	IncurredAt *time.Time `json:"incurred_at"`
}

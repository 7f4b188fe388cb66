package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	BaseModel
	PlanID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Category   string    `gorm:"size:100;not null"`
	Amount     float64   `gorm:"not null"`
	Currency   string    `gorm:"size:8;default:CNY"`
	Note       *string   `gorm:"type:text"`
	IncurredAt time.Time `gorm:"not null"`
}

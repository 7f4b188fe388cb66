package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TravelPlan is a reconciled, persisted itinerary owned by one user.
type TravelPlan struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title        string     `gorm:"size:255;not null"`
	Destination  string     `gorm:"size:255;not null"`
	StartDate    *time.Time `gorm:"type:date"`
	EndDate      *time.Time `gorm:"type:date"`
	DurationDays *int
	Travelers    *int

	BudgetAmount *float64
	Currency     string `gorm:"size:8;default:CNY"`

	Preferences     datatypes.JSON `gorm:"type:jsonb"`
	Itinerary       datatypes.JSON `gorm:"type:jsonb"`
	BudgetBreakdown datatypes.JSON `gorm:"type:jsonb"`
	Notes           *string        `gorm:"type:text"`

	// RawPlanText is the upstream document exactly as the provider produced it.
	RawPlanText *string `gorm:"type:text"`

	Expenses []Expense `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

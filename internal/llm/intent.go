package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"cloud.google.com/go/civil"
)

const (
	DefaultCurrency     = "CNY"
	DefaultDurationDays = 5
	DefaultTravelers    = 2
)

// StringList accepts either a JSON array of strings or a single comma separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*l = nil
	case string:
		*l = SplitCommaList(v)
	case []any:
		out := make(StringList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return errors.New("list items must be strings")
			}
			out = append(out, s)
		}
		*l = out
	default:
		return errors.New("expected a list of strings or a comma separated string")
	}
	return nil
}

// SplitCommaList splits s on commas, trims every part and drops empty ones.
func SplitCommaList(s string) StringList {
	var out StringList
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PlanIntent is the structured travel request handed to a provider.
type PlanIntent struct {
	Destination           string      `json:"destination" binding:"required"`
	StartDate             *civil.Date `json:"start_date,omitempty"`
	EndDate               *civil.Date `json:"end_date,omitempty"`
	DurationDays          *int        `json:"duration_days,omitempty" binding:"omitempty,gt=0"`
	BudgetAmount          *float64    `json:"budget_amount,omitempty" binding:"omitempty,gte=0"`
	Currency              string      `json:"currency,omitempty" binding:"omitempty,min=3,max=8"`
	Travelers             *int        `json:"travelers,omitempty" binding:"omitempty,gt=0"`
	TravelStyle           StringList  `json:"travel_style,omitempty"`
	Interests             StringList  `json:"interests,omitempty"`
	TravelingWithChildren *bool       `json:"traveling_with_children,omitempty"`
	CustomRequest         string      `json:"custom_request,omitempty"`
}

var (
	ErrMissingDestination = errors.New("destination is required")
	ErrInvalidDateRange   = errors.New("end_date must not be before start_date")
	ErrInvalidCurrency    = errors.New("currency must be 3 to 8 characters")
	ErrInvalidDuration    = errors.New("duration_days must be positive")
	ErrInvalidTravelers   = errors.New("travelers must be positive")
	ErrNegativeBudget     = errors.New("budget_amount must not be negative")
)

func (i PlanIntent) Validate() error {
	if strings.TrimSpace(i.Destination) == "" {
		return ErrMissingDestination
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		return ErrInvalidDateRange
	}
	if i.Currency != "" && (len(i.Currency) < 3 || len(i.Currency) > 8) {
		return ErrInvalidCurrency
	}
	if i.DurationDays != nil && *i.DurationDays <= 0 {
		return ErrInvalidDuration
	}
	if i.Travelers != nil && *i.Travelers <= 0 {
		return ErrInvalidTravelers
	}
	if i.BudgetAmount != nil && *i.BudgetAmount < 0 {
		return ErrNegativeBudget
	}
	return nil
}

// EffectiveCurrency returns the requested currency or CNY.
func (i PlanIntent) EffectiveCurrency() string {
	if c := strings.TrimSpace(i.Currency); c != "" {
		return c
	}
	return DefaultCurrency
}

func (i PlanIntent) EffectiveDuration() int {
	if i.DurationDays != nil && *i.DurationDays > 0 {
		return *i.DurationDays
	}
	return DefaultDurationDays
}

func (i PlanIntent) EffectiveTravelers() int {
	if i.Travelers != nil && *i.Travelers > 0 {
		return *i.Travelers
	}
	return DefaultTravelers
}

func (i PlanIntent) withChildren() bool {
	return i.TravelingWithChildren != nil && *i.TravelingWithChildren
}

// Overrides carries per-request provider settings. Empty fields never mask a configured default.
type Overrides struct {
	Provider string
	APIKey   string
	Endpoint string
	Model    string
}

// Settings is the process-wide provider configuration.
type Settings struct {
	Provider string
	APIKey   string
	Endpoint string
	Model    string
}

// Itinerary is the loosely typed document returned by a provider.
type Itinerary map[string]any

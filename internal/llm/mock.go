package llm

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

type mockActivity struct {
	slot        string
	title       string
	description string
	cost        float64
}

var mockActivities = []mockActivity{
	{"Morning", "Explore local market", "Try regional breakfast delicacies.", 120},
	{"Midday", "Visit cultural landmark", "Guided tour with interactive exhibits.", 260},
	{"Afternoon", "Hands-on workshop", "Family-friendly activity to learn local crafts.", 320},
	{"Evening", "Dinner at recommended restaurant", "Taste signature dishes and desserts.", 200},
}

type budgetShare struct {
	category string
	share    float64
	notes    string
}

// Shares sum to 1.
var mockBudgetShares = []budgetShare{
	{"Accommodation", 0.40, "Mid-range hotels"},
	{"Food", 0.20, "Local restaurants"},
	{"Activities", 0.20, "Tickets & workshops"},
	{"Transport", 0.15, "Rail passes & taxis"},
	{"Misc", 0.05, "Souvenirs & contingency"},
}

var mockTips = []any{
	"Reserve popular restaurants two weeks in advance.",
	"Purchase a local transit day-pass to save on transportation.",
	"Carry cash for smaller vendors and night markets.",
}

// MockItinerary builds the offline itinerary. today is used only when intent has no start date.
func MockItinerary(intent PlanIntent, today civil.Date) Itinerary {
	duration := intent.EffectiveDuration()
	start := today
	if intent.StartDate != nil {
		start = *intent.StartDate
	}

	days := make([]any, 0, duration)
	for offset := 0; offset < duration; offset++ {
		activities := make([]any, 0, len(mockActivities))
		for _, a := range mockActivities {
			activities = append(activities, map[string]any{
				"time":           a.slot,
				"title":          a.title,
				"description":    a.description,
				"location":       fmt.Sprintf("%s city center", intent.Destination),
				"latitude":       nil,
				"longitude":      nil,
				"estimated_cost": a.cost,
			})
		}
		days = append(days, map[string]any{
			"day":        float64(offset + 1),
			"date":       start.AddDays(offset).String(),
			"headline":   fmt.Sprintf("Day %d highlights in %s", offset+1, intent.Destination),
			"activities": activities,
		})
	}

	total := float64(duration * 1000)
	if intent.BudgetAmount != nil {
		total = *intent.BudgetAmount
	}
	items := make([]any, 0, len(mockBudgetShares))
	for _, s := range mockBudgetShares {
		items = append(items, map[string]any{
			"category": s.category,
			"amount":   total * s.share,
			"notes":    s.notes,
		})
	}

	tips := make([]any, len(mockTips))
	copy(tips, mockTips)

	return Itinerary{
		"title":   fmt.Sprintf("%s %d-Day Adventure", intent.Destination, duration),
		"summary": fmt.Sprintf("A balanced itinerary in %s optimized for %d travelers.", intent.Destination, intent.EffectiveTravelers()),
		"days":    days,
		"budget": map[string]any{
			"currency": intent.EffectiveCurrency(),
			"total":    total,
			"items":    items,
		},
		"tips": tips,
	}
}

type mockProvider struct {
	now func() time.Time
}

func (p *mockProvider) Name() string { return ProviderMock }

func (p *mockProvider) Generate(_ context.Context, intent PlanIntent) (Itinerary, error) {
	return MockItinerary(intent, civil.DateOf(p.now())), nil
}

package llm

import (
	"encoding/json"
	"math"
	"testing"

	"cloud.google.com/go/civil"
)

var testToday = civil.Date{Year: 2025, Month: 3, Day: 10}

func TestMockItineraryDeterministic(t *testing.T) {
	intent := PlanIntent{Destination: "Kyoto", DurationDays: intPtr(3), BudgetAmount: floatPtr(3000), Currency: "JPY", Travelers: intPtr(2)}

	first, err := json.Marshal(MockItinerary(intent, testToday))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(MockItinerary(intent, testToday))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("mock itinerary is not reproducible")
	}
}

func TestMockItineraryKyotoScenario(t *testing.T) {
	intent := PlanIntent{Destination: "Kyoto", DurationDays: intPtr(3), BudgetAmount: floatPtr(3000), Currency: "JPY", Travelers: intPtr(2)}
	doc := MockItinerary(intent, testToday)

	days := doc["days"].([]any)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	first := days[0].(map[string]any)
	if first["date"] != "2025-03-10" || first["headline"] != "Day 1 highlights in Kyoto" {
		t.Fatalf("unexpected first day %v", first)
	}
	activities := first["activities"].([]any)
	if len(activities) != 4 {
		t.Fatalf("expected 4 activities, got %d", len(activities))
	}
	if loc := activities[0].(map[string]any)["location"]; loc != "Kyoto city center" {
		t.Fatalf("unexpected location %v", loc)
	}

	budget := doc["budget"].(map[string]any)
	if budget["total"] != 3000.0 || budget["currency"] != "JPY" {
		t.Fatalf("unexpected budget %v", budget)
	}
	items := budget["items"].([]any)
	if len(items) != 5 {
		t.Fatalf("expected 5 budget items, got %d", len(items))
	}
	var sum float64
	for _, item := range items {
		sum += item.(map[string]any)["amount"].(float64)
	}
	if math.Abs(sum-3000) > 1e-6 {
		t.Fatalf("budget items sum to %f", sum)
	}
}

func TestMockItineraryDefaults(t *testing.T) {
	doc := MockItinerary(PlanIntent{Destination: "Oslo", StartDate: datePtr("2025-12-30")}, testToday)

	days := doc["days"].([]any)
	if len(days) != DefaultDurationDays {
		t.Fatalf("expected %d days, got %d", DefaultDurationDays, len(days))
	}
	if last := days[len(days)-1].(map[string]any)["date"]; last != "2026-01-03" {
		t.Fatalf("unexpected last date %v", last)
	}
	budget := doc["budget"].(map[string]any)
	if budget["total"] != 5000.0 || budget["currency"] != DefaultCurrency {
		t.Fatalf("unexpected budget %v", budget)
	}
	if doc["summary"] != "A balanced itinerary in Oslo optimized for 2 travelers." {
		t.Fatalf("unexpected summary %v", doc["summary"])
	}
	if tips := doc["tips"].([]any); len(tips) != 3 {
		t.Fatalf("expected 3 tips, got %d", len(tips))
	}
}

func TestMockBudgetSharesSumToOne(t *testing.T) {
	var total float64
	for _, s := range mockBudgetShares {
		total += s.share
	}
	if math.Abs(total-1) > 1e-9 {
		t.Fatalf("shares sum to %f", total)
	}
}

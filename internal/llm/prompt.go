package llm

import (
	"fmt"
	"strconv"
	"strings"
)

const itinerarySchema = `{
  "title": "string",
  "summary": "string",
  "days": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "headline": "string",
      "activities": [
        {
          "time": "string",
          "title": "string",
          "description": "string",
          "location": "string",
          "latitude": 0.0,
          "longitude": 0.0,
          "estimated_cost": 0.0
        }
      ]
    }
  ],
  "budget": {
    "currency": "string",
    "total": 0.0,
    "items": [{"category": "string", "amount": 0.0, "notes": "string"}]
  },
  "tips": ["string"]
}`

const defaultPreferences = "balanced mix of sightseeing and food"

// BuildPrompt renders intent into the instruction sent to every network provider.
func BuildPrompt(intent PlanIntent) string {
	currency := intent.EffectiveCurrency()

	var prompt strings.Builder
	prompt.WriteString("You are an expert travel planner. Craft a detailed day-by-day itinerary for the trip below.\n\n")
	prompt.WriteString(fmt.Sprintf("Destination: %s\n", strings.TrimSpace(intent.Destination)))
	prompt.WriteString(fmt.Sprintf("Duration: %d days\n", intent.EffectiveDuration()))

	if intent.BudgetAmount != nil {
		prompt.WriteString(fmt.Sprintf("Budget: %s %s\n", strconv.FormatFloat(*intent.BudgetAmount, 'f', -1, 64), currency))
	} else {
		prompt.WriteString(fmt.Sprintf("Budget: estimate based on standard costs in %s\n", currency))
	}

	travelers := fmt.Sprintf("Travelers: %d", intent.EffectiveTravelers())
	if intent.withChildren() {
		travelers += " with children"
	}
	prompt.WriteString(travelers + "\n")
	prompt.WriteString(fmt.Sprintf("Preferences: %s\n", preferenceSummary(intent)))

	if intent.StartDate != nil {
		prompt.WriteString(fmt.Sprintf("Trip must start on %s.\n", intent.StartDate.String()))
	}
	if intent.EndDate != nil {
		prompt.WriteString(fmt.Sprintf("Trip must end on %s.\n", intent.EndDate.String()))
	}
	if req := strings.TrimSpace(intent.CustomRequest); req != "" {
		prompt.WriteString(fmt.Sprintf("Additional notes: %s\n", req))
	}

	prompt.WriteString("\nCRITICAL REQUIREMENTS:\n")
	prompt.WriteString(fmt.Sprintf("1. Every activity must include an \"estimated_cost\" number expressed in %s\n", currency))
	prompt.WriteString("2. Dates must use the YYYY-MM-DD format\n")
	prompt.WriteString("3. Reply with ONLY a JSON document matching this schema, no markdown and no extra text:\n")
	prompt.WriteString(itinerarySchema)
	prompt.WriteString("\nReturn JSON only.")

	return prompt.String()
}

func preferenceSummary(intent PlanIntent) string {
	if s := joinNonBlank(intent.TravelStyle); s != "" {
		return s
	}
	if s := joinNonBlank(intent.Interests); s != "" {
		return s
	}
	return defaultPreferences
}

func joinNonBlank(items []string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"wayfarer/internal/llm"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/pkg/utils"
)

// ReconcilePlan merges a generated itinerary with the request that produced it.
// Request dates always win over upstream dates; missing upstream fields fall back to request values.
// The returned plan keeps the upstream document, unmodified, in RawPlanText.
func ReconcilePlan(ownerID uuid.UUID, req request_models.PlanGenerationRequest, generated llm.Itinerary) (*db_models.TravelPlan, error) {
	destination := strings.TrimSpace(req.Destination)

	title := fmt.Sprintf("%s Adventure", destination)
	if s, ok := generated["title"].(string); ok && strings.TrimSpace(s) != "" {
		title = s
	}

	// Days are copied so that the raw document below stays what the provider sent.
	var days []any
	if upstream, ok := generated["days"].([]any); ok {
		days = deepCopyJSON(upstream).([]any)
	}
	if days == nil {
		days = []any{}
	}

	startDate, endDate := req.StartDate, req.EndDate
	if startDate != nil && len(days) > 0 {
		for idx, day := range days {
			if m, ok := day.(map[string]any); ok {
				m["date"] = startDate.AddDays(idx).String()
			}
		}
		if endDate == nil {
			d := startDate.AddDays(len(days) - 1)
			endDate = &d
		}
	}
	if startDate == nil && len(days) > 0 {
		startDate = dayDate(days[0])
	}
	if endDate == nil && startDate != nil && len(days) > 0 {
		endDate = dayDate(days[len(days)-1])
	}

	var duration *int
	if req.DurationDays != nil {
		v := *req.DurationDays
		duration = &v
	} else if len(days) > 0 {
		v := len(days)
		duration = &v
	}

	budget, _ := generated["budget"].(map[string]any)
	if budget == nil {
		budget = map[string]any{}
	}
	budgetAmount := req.BudgetAmount
	if total, ok := budgetTotal(budget["total"]); ok {
		budgetAmount = &total
	}
	currency := req.EffectiveCurrency()
	if s, ok := budget["currency"].(string); ok && strings.TrimSpace(s) != "" {
		currency = s
	}

	tips := generated["tips"]
	if tips == nil {
		tips = []any{}
	}
	itinerary, err := marshalJSON(map[string]any{
		"days":    days,
		"tips":    tips,
		"summary": generated["summary"],
	})
	if err != nil {
		return nil, err
	}

	preferences, err := marshalJSON(map[string]any{
		"travel_style":            nonNilList(req.TravelStyle),
		"interests":               nonNilList(req.Interests),
		"traveling_with_children": req.TravelingWithChildren,
		"voice_transcript":        req.VoiceTranscript,
	})
	if err != nil {
		return nil, err
	}

	breakdown, err := marshalJSON(map[string]any{"summary": budget})
	if err != nil {
		return nil, err
	}

	raw, err := marshalJSON(map[string]any(generated))
	if err != nil {
		return nil, err
	}
	rawText := string(raw)

	return &db_models.TravelPlan{
		OwnerID:         ownerID,
		Title:           title,
		Destination:     destination,
		StartDate:       utils.DateToTime(startDate),
		EndDate:         utils.DateToTime(endDate),
		DurationDays:    duration,
		Travelers:       req.Travelers,
		BudgetAmount:    budgetAmount,
		Currency:        currency,
		Preferences:     datatypes.JSON(preferences),
		Itinerary:       datatypes.JSON(itinerary),
		BudgetBreakdown: datatypes.JSON(breakdown),
		Notes:           req.Notes,
		RawPlanText:     &rawText,
	}, nil
}

// dayDate reads a day's "date" field; malformed or missing dates count as absent.
func dayDate(day any) *civil.Date {
	m, ok := day.(map[string]any)
	if !ok {
		return nil
	}
	s, ok := m["date"].(string)
	if !ok {
		return nil
	}
	return utils.ParseDate(strings.TrimSpace(s))
}

// budgetTotal accepts a non-zero number or a numeric string.
func budgetTotal(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, t != 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || f == 0 {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func nonNilList(l llm.StringList) []string {
	if l == nil {
		return []string{}
	}
	return l
}

func deepCopyJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = deepCopyJSON(x)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = deepCopyJSON(x)
		}
		return out
	default:
		return v
	}
}

// marshalJSON encodes without HTML escaping so stored text matches what the provider wrote.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

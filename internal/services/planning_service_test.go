package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/llm"
	"wayfarer/internal/models/request_models"
	"wayfarer/pkg/utils"
)

func mockGenerator() *llm.Generator {
	return llm.NewGenerator(llm.Settings{Provider: llm.ProviderMock}, llm.WithClock(func() time.Time {
		return time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	}))
}

func TestGeneratePlanWithMockProvider(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanningService(repo, mockGenerator())
	owner := uuid.New()

	req := request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{
		Destination:  "Kyoto",
		DurationDays: intPtr(3),
		BudgetAmount: floatPtr(3000),
		Currency:     "JPY",
		Travelers:    intPtr(2),
	}}
	plan, err := svc.GeneratePlan(context.Background(), owner.String(), req)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if plan.OwnerID != owner.String() || plan.Destination != "Kyoto" {
		t.Fatalf("unexpected plan %+v", plan)
	}
	if plan.BudgetAmount == nil || *plan.BudgetAmount != 3000 || plan.Currency != "JPY" {
		t.Fatalf("unexpected budget %v %s", plan.BudgetAmount, plan.Currency)
	}
	if plan.StartDate == nil || plan.StartDate.String() != "2025-05-20" || plan.EndDate.String() != "2025-05-22" {
		t.Fatalf("unexpected dates %v %v", plan.StartDate, plan.EndDate)
	}

	days := decodeObject(t, plan.Itinerary)["days"].([]any)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	summary := decodeObject(t, plan.BudgetBreakdown)["summary"].(map[string]any)
	items := summary["items"].([]any)
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
	if len(repo.plans) != 1 {
		t.Fatalf("expected plan to be stored")
	}
}

func TestGeneratePlanPassesOnlyFilledOverrides(t *testing.T) {
	gen := &fakeGenerator{doc: llm.Itinerary{"title": "T"}}
	svc := NewPlanningService(newFakePlanRepo(), gen)

	req := request_models.PlanGenerationRequest{
		PlanIntent:  llm.PlanIntent{Destination: "Rome"},
		LLMProvider: "openai",
		LLMModel:    "gpt-4o",
	}
	if _, err := svc.GeneratePlan(context.Background(), uuid.NewString(), req); err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	want := llm.Overrides{Provider: "openai", Model: "gpt-4o"}
	if gen.overrides != want {
		t.Fatalf("expected %+v, got %+v", want, gen.overrides)
	}
}

func TestGeneratePlanCollapsesPipelineErrors(t *testing.T) {
	for _, pipelineErr := range []error{
		&llm.ConfigurationError{Message: "Unsupported LLM provider: foo"},
		&llm.UpstreamTransportError{Provider: "DashScope", StatusCode: 500, Body: "boom"},
		&llm.UpstreamParseError{Provider: "OpenAI", Message: "OpenAI response missing content."},
	} {
		repo := newFakePlanRepo()
		svc := NewPlanningService(repo, &fakeGenerator{err: pipelineErr})

		_, err := svc.GeneratePlan(context.Background(), uuid.NewString(), request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{Destination: "Rome"}})

		var gatewayErr *utils.GatewayError
		if !errors.As(err, &gatewayErr) {
			t.Fatalf("expected gateway error, got %v", err)
		}
		if gatewayErr.Message != "generation failed: "+pipelineErr.Error() {
			t.Fatalf("unexpected message %q", gatewayErr.Message)
		}
		if len(repo.plans) != 0 {
			t.Fatalf("nothing should be stored on failure")
		}
	}
}

func TestGeneratePlanDashScopeMissingText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":{}}`))
	}))
	defer srv.Close()

	gen := llm.NewGenerator(llm.Settings{Provider: llm.ProviderDashScope, APIKey: "k", Endpoint: srv.URL})
	svc := NewPlanningService(newFakePlanRepo(), gen)

	_, err := svc.GeneratePlan(context.Background(), uuid.NewString(), request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{Destination: "Rome"}})

	var parseErr *llm.UpstreamParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected wrapped parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), "[]") {
		t.Fatalf("diagnostic must name the empty key set: %v", err)
	}
}

func TestGeneratePlanValidation(t *testing.T) {
	gen := &fakeGenerator{doc: llm.Itinerary{}}
	svc := NewPlanningService(newFakePlanRepo(), gen)

	req := request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{
		Destination: "Rome",
		StartDate:   datePtr("2025-06-10"),
		EndDate:     datePtr("2025-06-01"),
	}}
	_, err := svc.GeneratePlan(context.Background(), uuid.NewString(), req)

	var validationErr *utils.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("provider must not be called for invalid input")
	}
}

func TestGeneratePlanStorageFailure(t *testing.T) {
	repo := newFakePlanRepo()
	repo.err = errors.New("connection refused")
	svc := NewPlanningService(repo, &fakeGenerator{doc: llm.Itinerary{}})

	_, err := svc.GeneratePlan(context.Background(), uuid.NewString(), request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{Destination: "Rome"}})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected database error, got %v", err)
	}
}

func TestPlanOwnership(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanningService(repo, mockGenerator())
	owner, stranger := uuid.NewString(), uuid.NewString()

	plan, err := svc.GeneratePlan(context.Background(), owner, request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{Destination: "Oslo"}})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if _, err := svc.GetPlan(context.Background(), stranger, plan.ID); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("expected not found for another user, got %v", err)
	}
	if err := svc.DeletePlan(context.Background(), stranger, plan.ID); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("expected not found on foreign delete, got %v", err)
	}
	if _, err := svc.GetPlan(context.Background(), owner, "not-a-uuid"); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("expected not found for malformed id, got %v", err)
	}

	got, err := svc.GetPlan(context.Background(), owner, plan.ID)
	if err != nil || got.ID != plan.ID {
		t.Fatalf("GetPlan: %v", err)
	}
}

func TestListPlansMostRecentFirst(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanningService(repo, mockGenerator())
	owner := uuid.NewString()

	for _, dest := range []string{"Oslo", "Bergen"} {
		if _, err := svc.GeneratePlan(context.Background(), owner, request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{Destination: dest}}); err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
	}
	if _, err := svc.GeneratePlan(context.Background(), uuid.NewString(), request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{Destination: "Rome"}}); err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	plans, err := svc.ListPlans(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(plans) != 2 || plans[0].Destination != "Bergen" {
		t.Fatalf("unexpected list %+v", plans)
	}
}

func TestUpdateAndDeletePlan(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanningService(repo, mockGenerator())
	owner := uuid.NewString()

	plan, _ := svc.GeneratePlan(context.Background(), owner, request_models.PlanGenerationRequest{PlanIntent: llm.PlanIntent{
		Destination: "Oslo",
		StartDate:   datePtr("2025-06-01"),
	}})

	title, notes := "Fjords", "bring a raincoat"
	updated, err := svc.UpdatePlan(context.Background(), owner, plan.ID, request_models.TravelPlanUpdateRequest{
		Title:     &title,
		Notes:     &notes,
		Travelers: intPtr(3),
	})
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if updated.Title != "Fjords" || *updated.Notes != notes || *updated.Travelers != 3 {
		t.Fatalf("unexpected update result %+v", updated)
	}

	_, err = svc.UpdatePlan(context.Background(), owner, plan.ID, request_models.TravelPlanUpdateRequest{EndDate: datePtr("2025-05-01")})
	var validationErr *utils.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error for end before start, got %v", err)
	}

	if err := svc.DeletePlan(context.Background(), owner, plan.ID); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	if _, err := svc.GetPlan(context.Background(), owner, plan.ID); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("expected deleted plan to be gone, got %v", err)
	}
}

package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"wayfarer/internal/llm"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

// ItineraryGenerator produces an upstream itinerary document for one request.
type ItineraryGenerator interface {
	Generate(ctx context.Context, intent llm.PlanIntent, overrides llm.Overrides) (llm.Itinerary, error)
}

type PlanningServiceInterface interface {
	GeneratePlan(ctx context.Context, ownerId string, request request_models.PlanGenerationRequest) (response_models.TravelPlanResponse, error)
	ListPlans(ctx context.Context, ownerId string) ([]response_models.TravelPlanResponse, error)
	GetPlan(ctx context.Context, ownerId string, planId string) (response_models.TravelPlanResponse, error)
	UpdatePlan(ctx context.Context, ownerId string, planId string, request request_models.TravelPlanUpdateRequest) (response_models.TravelPlanResponse, error)
	DeletePlan(ctx context.Context, ownerId string, planId string) error
}

type PlanningService struct {
	planRepo  repositories.ITravelPlanRepository
	generator ItineraryGenerator
}

func NewPlanningService(planRepo repositories.ITravelPlanRepository, generator ItineraryGenerator) PlanningServiceInterface {
	return &PlanningService{
		planRepo:  planRepo,
		generator: generator,
	}
}

func (p *PlanningService) GeneratePlan(ctx context.Context, ownerId string, request request_models.PlanGenerationRequest) (response_models.TravelPlanResponse, error) {
	owner, err := uuid.Parse(ownerId)
	if err != nil {
		return response_models.TravelPlanResponse{}, utils.ErrInvalidID
	}
	if err := request.Validate(); err != nil {
		return response_models.TravelPlanResponse{}, &utils.ValidationError{Message: err.Error()}
	}

	log := logger.FromContext(ctx)

	itinerary, err := p.generator.Generate(ctx, request.PlanIntent, request.Overrides())
	if err != nil {
		log.Warn("plan generation failed",
			zap.String("kind", string(llm.KindOf(err))),
			zap.String("destination", request.Destination),
			zap.Error(err))
		return response_models.TravelPlanResponse{}, &utils.GatewayError{Message: "generation failed: " + err.Error(), Err: err}
	}

	plan, err := ReconcilePlan(owner, request, itinerary)
	if err != nil {
		return response_models.TravelPlanResponse{}, err
	}

	if err := p.planRepo.Create(ctx, plan); err != nil {
		log.Error("store generated plan", zap.Error(err))
		return response_models.TravelPlanResponse{}, utils.ErrDatabaseError
	}

	log.Info("plan generated", zap.String("plan_id", plan.ID.String()), zap.String("destination", plan.Destination))
	return response_models.NewTravelPlanResponse(*plan), nil
}

func (p *PlanningService) ListPlans(ctx context.Context, ownerId string) ([]response_models.TravelPlanResponse, error) {
	owner, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	plans, err := p.planRepo.ListForOwner(ctx, owner)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TravelPlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.NewTravelPlanResponse(plan))
	}
	return out, nil
}

func (p *PlanningService) GetPlan(ctx context.Context, ownerId string, planId string) (response_models.TravelPlanResponse, error) {
	plan, err := p.loadOwnedPlan(ctx, ownerId, planId)
	if err != nil {
		return response_models.TravelPlanResponse{}, err
	}
	return response_models.NewTravelPlanResponse(*plan), nil
}

func (p *PlanningService) UpdatePlan(ctx context.Context, ownerId string, planId string, request request_models.TravelPlanUpdateRequest) (response_models.TravelPlanResponse, error) {
	plan, err := p.loadOwnedPlan(ctx, ownerId, planId)
	if err != nil {
		return response_models.TravelPlanResponse{}, err
	}

	fields, err := planUpdateFields(plan, request)
	if err != nil {
		return response_models.TravelPlanResponse{}, err
	}

	if err := p.planRepo.Update(ctx, plan, fields); err != nil {
		logger.FromContext(ctx).Error("update plan", zap.String("plan_id", planId), zap.Error(err))
		return response_models.TravelPlanResponse{}, utils.ErrDatabaseError
	}

	return p.GetPlan(ctx, ownerId, planId)
}

func (p *PlanningService) DeletePlan(ctx context.Context, ownerId string, planId string) error {
	plan, err := p.loadOwnedPlan(ctx, ownerId, planId)
	if err != nil {
		return err
	}

	if err := p.planRepo.Delete(ctx, plan); err != nil {
		logger.FromContext(ctx).Error("delete plan", zap.String("plan_id", planId), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// loadOwnedPlan hides plans owned by other users behind ErrPlanNotFound.
func (p *PlanningService) loadOwnedPlan(ctx context.Context, ownerId string, planId string) (*db_models.TravelPlan, error) {
	owner, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, utils.ErrInvalidID
	}
	id, err := uuid.Parse(planId)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := p.planRepo.GetForOwner(ctx, owner, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func planUpdateFields(plan *db_models.TravelPlan, request request_models.TravelPlanUpdateRequest) (map[string]any, error) {
	fields := map[string]any{}

	if request.Title != nil {
		fields["title"] = *request.Title
	}
	if request.StartDate != nil {
		fields["start_date"] = utils.DateToTime(request.StartDate)
	}
	if request.EndDate != nil {
		fields["end_date"] = utils.DateToTime(request.EndDate)
	}
	if request.DurationDays != nil {
		fields["duration_days"] = *request.DurationDays
	}
	if request.Travelers != nil {
		fields["travelers"] = *request.Travelers
	}
	if request.BudgetAmount != nil {
		fields["budget_amount"] = *request.BudgetAmount
	}
	if request.Currency != nil {
		fields["currency"] = *request.Currency
	}
	if request.Notes != nil {
		fields["notes"] = *request.Notes
	}
	for column, doc := range map[string]map[string]any{
		"preferences":      request.Preferences,
		"itinerary":        request.Itinerary,
		"budget_breakdown": request.BudgetBreakdown,
	} {
		if doc == nil {
			continue
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, &utils.ValidationError{Message: column + " is not valid JSON"}
		}
		fields[column] = datatypes.JSON(b)
	}

	start, end := plan.StartDate, plan.EndDate
	if request.StartDate != nil {
		start = utils.DateToTime(request.StartDate)
	}
	if request.EndDate != nil {
		end = utils.DateToTime(request.EndDate)
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, &utils.ValidationError{Message: llm.ErrInvalidDateRange.Error()}
	}
	return fields, nil
}

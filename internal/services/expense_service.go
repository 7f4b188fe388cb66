package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wayfarer/internal/llm"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

type ExpenseServiceInterface interface {
	ListExpenses(ctx context.Context, ownerId string, planId string) ([]response_models.ExpenseResponse, error)
	AddExpense(ctx context.Context, ownerId string, planId string, request request_models.ExpenseCreateRequest) (response_models.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, ownerId string, planId string, expenseId string) error
}

type ExpenseService struct {
	expenseRepo repositories.IExpenseRepository
	planRepo    repositories.ITravelPlanRepository
	now         func() time.Time
}

func NewExpenseService(expenseRepo repositories.IExpenseRepository, planRepo repositories.ITravelPlanRepository) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		planRepo:    planRepo,
		now:         time.Now,
	}
}

func (e *ExpenseService) ListExpenses(ctx context.Context, ownerId string, planId string) ([]response_models.ExpenseResponse, error) {
	plan, err := e.ownedPlan(ctx, ownerId, planId)
	if err != nil {
		return nil, err
	}

	expenses, err := e.expenseRepo.ListForPlan(ctx, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		out = append(out, response_models.NewExpenseResponse(expense))
	}
	return out, nil
}

func (e *ExpenseService) AddExpense(ctx context.Context, ownerId string, planId string, request request_models.ExpenseCreateRequest) (response_models.ExpenseResponse, error) {
	plan, err := e.ownedPlan(ctx, ownerId, planId)
	if err != nil {
		return response_models.ExpenseResponse{}, err
	}

	currency := strings.TrimSpace(request.Currency)
	if currency == "" {
		currency = llm.DefaultCurrency
	}
	incurredAt := e.now().UTC()
	if request.IncurredAt != nil {
		incurredAt = *request.IncurredAt
	}

	expense := &db_models.Expense{
		PlanID:     plan.ID,
		Category:   request.Category,
		Amount:     request.Amount,
		Currency:   currency,
		Note:       request.Note,
		IncurredAt: incurredAt,
	}
	if err := e.expenseRepo.Create(ctx, expense); err != nil {
		logger.FromContext(ctx).Error("create expense", zap.String("plan_id", planId), zap.Error(err))
		return response_models.ExpenseResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewExpenseResponse(*expense), nil
}

func (e *ExpenseService) DeleteExpense(ctx context.Context, ownerId string, planId string, expenseId string) error {
	plan, err := e.ownedPlan(ctx, ownerId, planId)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(expenseId)
	if err != nil {
		return utils.ErrExpenseNotFound
	}
	expense, err := e.expenseRepo.GetForPlan(ctx, plan.ID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil {
		return utils.ErrExpenseNotFound
	}

	if err := e.expenseRepo.Delete(ctx, expense); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *ExpenseService) ownedPlan(ctx context.Context, ownerId string, planId string) (*db_models.TravelPlan, error) {
	owner, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, utils.ErrInvalidID
	}
	id, err := uuid.Parse(planId)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := e.planRepo.GetForOwner(ctx, owner, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

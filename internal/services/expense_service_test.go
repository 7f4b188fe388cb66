package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/pkg/utils"
)

func seedPlan(t *testing.T, repo *fakePlanRepo, owner uuid.UUID) *db_models.TravelPlan {
	t.Helper()
	plan := &db_models.TravelPlan{OwnerID: owner, Title: "Trip", Destination: "Kyoto", Currency: "JPY"}
	if err := repo.Create(context.Background(), plan); err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return plan
}

func TestAddAndListExpenses(t *testing.T) {
	plans := newFakePlanRepo()
	owner := uuid.New()
	plan := seedPlan(t, plans, owner)

	svc := NewExpenseService(newFakeExpenseRepo(), plans).(*ExpenseService)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) }

	expense, err := svc.AddExpense(context.Background(), owner.String(), plan.ID.String(), request_models.ExpenseCreateRequest{
		Category: "food",
		Amount:   42.5,
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if expense.Currency != "CNY" || !expense.IncurredAt.Equal(svc.now()) || expense.PlanID != plan.ID.String() {
		t.Fatalf("unexpected expense %+v", expense)
	}

	list, err := svc.ListExpenses(context.Background(), owner.String(), plan.ID.String())
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(list) != 1 || list[0].Amount != 42.5 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestExpensesRequireOwnedPlan(t *testing.T) {
	plans := newFakePlanRepo()
	plan := seedPlan(t, plans, uuid.New())
	svc := NewExpenseService(newFakeExpenseRepo(), plans)

	_, err := svc.AddExpense(context.Background(), uuid.NewString(), plan.ID.String(), request_models.ExpenseCreateRequest{Category: "food", Amount: 1})
	if !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("expected plan not found, got %v", err)
	}
	if _, err := svc.ListExpenses(context.Background(), uuid.NewString(), plan.ID.String()); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("expected plan not found, got %v", err)
	}
}

func TestDeleteExpense(t *testing.T) {
	plans := newFakePlanRepo()
	owner := uuid.New()
	plan := seedPlan(t, plans, owner)
	other := seedPlan(t, plans, owner)
	svc := NewExpenseService(newFakeExpenseRepo(), plans)

	expense, _ := svc.AddExpense(context.Background(), owner.String(), plan.ID.String(), request_models.ExpenseCreateRequest{Category: "taxi", Amount: 9, Currency: "JPY"})

	if err := svc.DeleteExpense(context.Background(), owner.String(), other.ID.String(), expense.ID); !errors.Is(err, utils.ErrExpenseNotFound) {
		t.Fatalf("expense of another plan must not be deletable, got %v", err)
	}
	if err := svc.DeleteExpense(context.Background(), owner.String(), plan.ID.String(), expense.ID); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	if err := svc.DeleteExpense(context.Background(), owner.String(), plan.ID.String(), expense.ID); !errors.Is(err, utils.ErrExpenseNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

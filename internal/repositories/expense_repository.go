package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

type IExpenseRepository interface {
	Create(ctx context.Context, expense *db_models.Expense) error
	ListForPlan(ctx context.Context, planID uuid.UUID) ([]db_models.Expense, error)
	GetForPlan(ctx context.Context, planID, expenseID uuid.UUID) (*db_models.Expense, error)
	Delete(ctx context.Context, expense *db_models.Expense) error
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) IExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (e *ExpenseRepository) Create(ctx context.Context, expense *db_models.Expense) error {
	return e.db.WithContext(ctx).Create(expense).Error
}

func (e *ExpenseRepository) ListForPlan(ctx context.Context, planID uuid.UUID) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := e.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("incurred_at DESC").
		Find(&expenses).Error

	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (e *ExpenseRepository) GetForPlan(ctx context.Context, planID, expenseID uuid.UUID) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := e.db.WithContext(ctx).First(&expense, "id = ? AND plan_id = ?", expenseID, planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (e *ExpenseRepository) Delete(ctx context.Context, expense *db_models.Expense) error {
	return e.db.WithContext(ctx).Delete(expense).Error
}

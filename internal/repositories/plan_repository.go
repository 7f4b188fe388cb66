package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

type ITravelPlanRepository interface {
	Create(ctx context.Context, plan *db_models.TravelPlan) error
	GetForOwner(ctx context.Context, ownerID, planID uuid.UUID) (*db_models.TravelPlan, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TravelPlan, error)
	Update(ctx context.Context, plan *db_models.TravelPlan, fields map[string]any) error
	Delete(ctx context.Context, plan *db_models.TravelPlan) error
}

type TravelPlanRepository struct {
	db *gorm.DB
}

func NewTravelPlanRepository(db *gorm.DB) ITravelPlanRepository {
	return &TravelPlanRepository{db: db}
}

func (p *TravelPlanRepository) Create(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

// GetForOwner returns nil, nil when the plan does not exist or belongs to someone else.
func (p *TravelPlanRepository) GetForOwner(ctx context.Context, ownerID, planID uuid.UUID) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := p.db.WithContext(ctx).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("incurred_at DESC") }).
		Where("id = ? AND owner_id = ?", planID, ownerID).
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *TravelPlanRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := p.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *TravelPlanRepository) Update(ctx context.Context, plan *db_models.TravelPlan, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return p.db.WithContext(ctx).Model(plan).Updates(fields).Error
}

func (p *TravelPlanRepository) Delete(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&db_models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(plan).Error
	})
}

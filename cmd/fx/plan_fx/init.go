package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/llm"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanningService)

func providePlanRepo(db *gorm.DB) repositories.ITravelPlanRepository {
	return repositories.NewTravelPlanRepository(db)
}

func providePlanningService(planRepo repositories.ITravelPlanRepository, generator *llm.Generator) services.PlanningServiceInterface {
	return services.NewPlanningService(planRepo, generator)
}

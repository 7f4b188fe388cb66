package controllers_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewExpenseController),
	fx.Provide(controllers.NewSpeechController))

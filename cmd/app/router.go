package main

import (
	"github.com/gin-gonic/gin"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/config"
	"wayfarer/pkg/middleware"
	mem "wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

type Controllers struct {
	Account *controllers.AccountController
	Plan    *controllers.PlanController
	Expense *controllers.ExpenseController
	Speech  *controllers.SpeechController
}

func ProvideRouter(
	cfg config.Config,
	issuer *utils.TokenIssuer,
	limiters mem.LimiterStore,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	expenseController *controllers.ExpenseController,
	speechController *controllers.SpeechController) *gin.Engine {

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.HTTP.CORSOrigins))

	RegisterRoutes(r, issuer, limiters, cfg.RateLimit.PlanGenerationsPerMinute, Controllers{
		Account: accountController,
		Plan:    planController,
		Expense: expenseController,
		Speech:  speechController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, issuer *utils.TokenIssuer, limiters mem.LimiterStore, generationsPerMinute int, ctl Controllers) {
	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", ctl.Account.Register)
	auth.POST("/login", ctl.Account.Login)

	secured := v1.Group("")
	secured.Use(middleware.JWTAuthMiddleware(issuer))

	secured.GET("/users/me", ctl.Account.Me)

	plans := secured.Group("/plans")
	plans.GET("", ctl.Plan.ListPlans)
	plans.POST("/generate", middleware.PerUserRateLimit(limiters, generationsPerMinute), ctl.Plan.GeneratePlan)
	plans.GET("/:id", ctl.Plan.GetPlan)
	plans.PATCH("/:id", ctl.Plan.UpdatePlan)
	plans.DELETE("/:id", ctl.Plan.DeletePlan)

	plans.GET("/:id/expenses", ctl.Expense.ListExpenses)
	plans.POST("/:id/expenses", ctl.Expense.AddExpense)
	plans.DELETE("/:id/expenses/:expenseId", ctl.Expense.DeleteExpense)

	secured.POST("/speech/transcribe", ctl.Speech.Transcribe)
}

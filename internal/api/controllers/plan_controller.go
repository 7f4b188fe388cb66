package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PlanController struct {
	planningService services.PlanningServiceInterface
}

func NewPlanController(planningService services.PlanningServiceInterface) *PlanController {
	return &PlanController{
		planningService: planningService,
	}
}

// ListPlans godoc
// @Summary List the caller's travel plans, newest first
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response_models.TravelPlanResponse}
// @Router /api/v1/plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	plans, err := p.planningService.ListPlans(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "")
}

// GeneratePlan godoc
// @Summary Generate and store a new itinerary
// @Description Calls the configured LLM provider (or the per-request override) and stores the reconciled plan.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.PlanGenerationRequest true "Trip request"
// @Success 201 {object} utils.APIResponse{data=response_models.PlanGenerationResponse}
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/plans/generate [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.PlanGenerationRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := p.planningService.GeneratePlan(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.PlanGenerationResponse{Plan: plan}, "Plan generated")
}

// GetPlan godoc
// @Summary Get one plan with its expenses
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TravelPlanResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/plans/{id} [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	plan, err := p.planningService.GetPlan(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "")
}

// UpdatePlan godoc
// @Summary Partially update a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body request_models.TravelPlanUpdateRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.TravelPlanResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/plans/{id} [patch]
func (p *PlanController) UpdatePlan(c *gin.Context) {
	var req request_models.TravelPlanUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := p.planningService.UpdatePlan(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated")
}

// DeletePlan godoc
// @Summary Delete a plan and its expenses
// @Tags Plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/plans/{id} [delete]
func (p *PlanController) DeletePlan(c *gin.Context) {
	if err := p.planningService.DeletePlan(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

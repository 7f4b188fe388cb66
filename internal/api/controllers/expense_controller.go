package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// ListExpenses godoc
// @Summary List expenses recorded against a plan
// @Tags Expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=[]response_models.ExpenseResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/plans/{id}/expenses [get]
func (e *ExpenseController) ListExpenses(c *gin.Context) {
	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "")
}

// AddExpense godoc
// @Summary Record an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body request_models.ExpenseCreateRequest true "Expense"
// @Success 201 {object} utils.APIResponse{data=response_models.ExpenseResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/plans/{id}/expenses [post]
func (e *ExpenseController) AddExpense(c *gin.Context) {
	var req request_models.ExpenseCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := e.expenseService.AddExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, expense, "Expense recorded")
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Expenses
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param expenseId path string true "Expense ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/plans/{id}/expenses/{expenseId} [delete]
func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	err := e.expenseService.DeleteExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("expenseId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package controllers

import (
	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse{data=response_models.UserProfileResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, profile, "Account created successfully")
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TokenResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// Me godoc
// @Summary Current user profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response_models.UserProfileResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/users/me [get]
func (a *AccountController) Me(c *gin.Context) {
	profile, err := a.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "")
}

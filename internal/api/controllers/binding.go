package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"wayfarer/pkg/utils"
)

// bindJSON answers 400 for malformed bodies and 422 for bodies that fail field validation.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.RespondError(c, http.StatusUnprocessableEntity, validationErrs.Error())
		return false
	}
	utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
	return false
}

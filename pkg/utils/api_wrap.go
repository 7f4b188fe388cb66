package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wayfarer/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

var notFoundErrors = []error{ErrUserNotFound, ErrPlanNotFound, ErrExpenseNotFound}

var badRequestErrors = []error{ErrInvalidID, ErrEmailAlreadyExists, ErrTranscriptRequired, ErrAudioRequired, ErrEmptyAudio}

func HandleServiceError(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())

	var validationErr *ValidationError
	var gatewayErr *GatewayError

	switch {
	case matchedIn(err, notFoundErrors) != nil:
		RespondError(c, http.StatusNotFound, capitalize(matchedIn(err, notFoundErrors).Error()))
	case matchedIn(err, badRequestErrors) != nil:
		RespondError(c, http.StatusBadRequest, capitalize(matchedIn(err, badRequestErrors).Error()))
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, ErrUnsupportedSpeechProvider):
		RespondError(c, http.StatusUnprocessableEntity, "Unsupported speech provider")
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusUnprocessableEntity, validationErr.Message)
	case errors.As(err, &gatewayErr):
		log.Warn("upstream failure", zap.Error(err))
		RespondError(c, http.StatusBadGateway, gatewayErr.Message)
	case errors.Is(err, ErrSpeechNotConfigured):
		log.Error("speech provider misconfigured", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Speech provider credentials missing")
	case errors.Is(err, ErrDatabaseError):
		log.Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error("unknown error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// matchedIn returns the sentinel in targets that err wraps, or nil.
func matchedIn(err error, targets []error) error {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

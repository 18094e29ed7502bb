package controller

import (
	"errors"
	"net/http"

	"relivo-backend/models"
	"relivo-backend/services"
	"relivo-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// serviceError translates a service-layer error into the API envelope. The
// sentinel's message is surfaced to the client verbatim.
func serviceError(c *gin.Context, log logger.Logger, err error) {
	status := http.StatusInternalServerError
	errType := "InternalError"

	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrOrganizationExists):
		status = http.StatusConflict
		errType = "ConflictError"
	case errors.Is(err, services.ErrEmailNotRegistered),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrOrganizationNotFound):
		status = http.StatusNotFound
		errType = "NotFoundError"
	case errors.Is(err, services.ErrIncorrectPassword):
		status = http.StatusUnauthorized
		errType = "AuthenticationError"
	case errors.Is(err, services.ErrAccountDisabled):
		status = http.StatusForbidden
		errType = "AuthorizationError"
	case errors.Is(err, services.ErrEmailNotVerified),
		errors.Is(err, services.ErrAlreadyVerified),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrCodeExpired),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition):
		status = http.StatusBadRequest
		errType = "ValidationError"
	default:
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
			errType = "ValidationError"
		} else {
			log.Errorf("Unexpected service error: %v", err)
		}
	}

	c.JSON(status, models.APIResponse{
		Status:  "error",
		Code:    status,
		Message: err.Error(),
		Error: &models.APIError{
			Type:    errType,
			Details: err.Error(),
		},
	})
}

// bindError reports a malformed or invalid request body.
func bindError(c *gin.Context, log logger.Logger, err error) {
	log.Error("Failed to bind JSON:", err)
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: err.Error(),
		},
	})
}

// success writes the standard success envelope.
func success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.APIResponse{
		Status:  "success",
		Code:    status,
		Message: message,
		Data:    data,
	})
}

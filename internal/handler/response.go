package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
	"mrtrack/internal/middleware"
	"mrtrack/internal/service"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMeta carries the size of a list response.
type ListMeta struct {
	Total int `json:"total"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondList sends a 200 success response with the list length in meta.
func RespondList(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &ListMeta{Total: total}})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrDoctorNotFound):
		return http.StatusNotFound, "DOCTOR_NOT_FOUND", "doctor not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found"
	case errors.Is(err, domain.ErrFieldRepNotFound):
		return http.StatusNotFound, "FIELD_REP_NOT_FOUND", "field rep not found"
	case errors.Is(err, domain.ErrApprovalNotFound):
		return http.StatusNotFound, "APPROVAL_NOT_FOUND", "approval not found"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND", "task not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrFieldRepInactive):
		return http.StatusUnprocessableEntity, "FIELD_REP_INACTIVE", "field rep is inactive"
	case errors.Is(err, domain.ErrProductInactive):
		return http.StatusUnprocessableEntity, "PRODUCT_INACTIVE", "product is not being promoted"
	case errors.Is(err, domain.ErrApprovalNotPending):
		return http.StatusConflict, "APPROVAL_NOT_PENDING", "report has already been decided"
	case errors.Is(err, domain.ErrTaskNotPending):
		return http.StatusConflict, "TASK_NOT_PENDING", "task is already completed"
	case errors.Is(err, domain.ErrRejectionReasonRequired):
		return http.StatusBadRequest, "REJECTION_REASON_REQUIRED", "a rejection reason is required"
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD"
	case errors.Is(err, domain.ErrInvalidTime):
		return http.StatusBadRequest, "INVALID_TIME", "time must be HH:MM"
	case errors.Is(err, domain.ErrInvalidCoordinates):
		return http.StatusBadRequest, "INVALID_COORDINATES", "lat must be within ±90 and lng within ±180"
	case errors.Is(err, domain.ErrInvalidMonth):
		return http.StatusBadRequest, "INVALID_MONTH", "month must be YYYY-MM"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "INVALID_AMOUNT", "amounts must not be negative"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", err.Error()
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict, "DUPLICATE_ID", "id already exists"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "DUPLICATE_USERNAME", "username already exists"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway, "UPLOAD_FAILED", "report upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractActor returns the authenticated caller. Returns false if auth
// context is missing (error response already written).
func extractActor(c *gin.Context) (service.Actor, bool) {
	actor, err := middleware.GetActor(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return service.Actor{}, false
	}
	return actor, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		logging.LogError(logging.Get(), "http", c.Request.Method+" "+c.FullPath(), logrus.Fields{
			"request_id": c.GetString(middleware.ContextKeyRequestID),
			"status":     status,
		}, err)
	}
	RespondError(c, status, code, msg)
}

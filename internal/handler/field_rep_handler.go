package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// FieldRepHandler handles field reps and their per-rep views.
type FieldRepHandler struct {
	masterService    service.MasterService
	analyticsService service.AnalyticsService
	resetService     service.PasswordResetService
}

// NewFieldRepHandler creates a new FieldRepHandler.
func NewFieldRepHandler(
	masterService service.MasterService,
	analyticsService service.AnalyticsService,
	resetService service.PasswordResetService,
) *FieldRepHandler {
	return &FieldRepHandler{
		masterService:    masterService,
		analyticsService: analyticsService,
		resetService:     resetService,
	}
}

// List handles GET /api/v1/field-reps
// @Summary List field reps
// @Tags field-reps
// @Produce json
// @Success 200 {object} Response{data=[]domain.FieldRep}
// @Failure 403 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps [get]
func (h *FieldRepHandler) List(c *gin.Context) {
	reps, err := h.masterService.ListFieldReps(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, reps, len(reps))
}

// GetByID handles GET /api/v1/field-reps/:id
// @Summary Get a field rep
// @Tags field-reps
// @Produce json
// @Param id path string true "Field rep ID"
// @Success 200 {object} Response{data=domain.FieldRep}
// @Failure 403 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps/{id} [get]
func (h *FieldRepHandler) GetByID(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	rep, err := h.masterService.GetFieldRep(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rep)
}

// Create handles POST /api/v1/field-reps
// @Summary Onboard a field rep
// @Description A non-empty password also provisions the rep's login.
// @Tags field-reps
// @Accept json
// @Produce json
// @Param body body CreateFieldRepRequest true "Field rep"
// @Success 201 {object} Response{data=domain.FieldRep}
// @Failure 400 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps [post]
func (h *FieldRepHandler) Create(c *gin.Context) {
	var input service.CreateFieldRepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rep, err := h.masterService.CreateFieldRep(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, rep)
}

// SetStatus handles PATCH /api/v1/field-reps/:id/status
// @Summary Activate or deactivate a field rep
// @Description Deactivating a rep also disables their login.
// @Tags field-reps
// @Accept json
// @Produce json
// @Param id path string true "Field rep ID"
// @Param body body SetStatusRequest true "Status"
// @Success 200 {object} Response{data=domain.FieldRep}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps/{id}/status [patch]
func (h *FieldRepHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rep, err := h.masterService.SetFieldRepStatus(c.Request.Context(), c.Param("id"), domain.FieldRepStatus(req.Status))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rep)
}

// ResetPassword handles POST /api/v1/field-reps/:id/reset-password
// @Summary Issue a new temporary password for a rep
// @Description The password is emailed when the rep has an address and is always returned once in the response.
// @Tags field-reps
// @Produce json
// @Param id path string true "Field rep ID"
// @Success 200 {object} Response{data=service.Credentials}
// @Failure 404 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps/{id}/reset-password [post]
func (h *FieldRepHandler) ResetPassword(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	creds, err := h.resetService.ResetFieldRepPassword(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, creds)
}

// Visits handles GET /api/v1/field-reps/:id/visits?date=
// @Summary A rep's visits, optionally for one day
// @Tags field-reps
// @Produce json
// @Param id path string true "Field rep ID"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} Response{data=[]domain.DoctorVisit}
// @Failure 400 {object} ErrorResponseBody
// @Failure 403 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps/{id}/visits [get]
func (h *FieldRepHandler) Visits(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	visits, err := h.analyticsService.FieldRepVisits(c.Request.Context(), actor, c.Param("id"), c.Query("date"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, visits, len(visits))
}

// Coverage handles GET /api/v1/field-reps/:id/coverage
// @Summary Doctors a rep has and has not covered
// @Tags field-reps
// @Produce json
// @Param id path string true "Field rep ID"
// @Success 200 {object} Response{data=domain.CoverageStats}
// @Failure 403 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps/{id}/coverage [get]
func (h *FieldRepHandler) Coverage(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.FieldRepCoverage(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// Expenses handles GET /api/v1/field-reps/:id/expenses?month=
// @Summary A rep's daily expenses for a month, newest first
// @Tags field-reps
// @Produce json
// @Param id path string true "Field rep ID"
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} Response{data=[]domain.DailyExpense}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps/{id}/expenses [get]
func (h *FieldRepHandler) Expenses(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	expenses, err := h.analyticsService.MonthlyExpenses(c.Request.Context(), actor, c.Param("id"), c.Query("month"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, expenses, len(expenses))
}

// ExpenseSummary handles GET /api/v1/field-reps/:id/expenses/summary?month=
// @Summary Monthly expense totals for a rep
// @Tags field-reps
// @Produce json
// @Param id path string true "Field rep ID"
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} Response{data=domain.MonthlyExpenseSummary}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /field-reps/{id}/expenses/summary [get]
func (h *FieldRepHandler) ExpenseSummary(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.ExpenseSummary(c.Request.Context(), actor, c.Param("id"), c.Query("month"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

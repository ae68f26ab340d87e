package handler

import (
	"github.com/gin-gonic/gin"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// AnalyticsHandler serves the admin aggregate views.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Products handles GET /api/v1/analytics/products
// @Summary Promotion counts per product
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=[]domain.ProductPromotionStat}
// @Failure 403 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /analytics/products [get]
func (h *AnalyticsHandler) Products(c *gin.Context) {
	stats, err := h.analyticsService.ProductStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, stats, len(stats))
}

// Doctors handles GET /api/v1/analytics/doctors
// @Summary Business per doctor
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=[]domain.DoctorBusinessStat}
// @Security BearerAuth
// @Router /analytics/doctors [get]
func (h *AnalyticsHandler) Doctors(c *gin.Context) {
	stats, err := h.analyticsService.DoctorStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, stats, len(stats))
}

// FieldReps handles GET /api/v1/analytics/field-reps
// @Summary Business and incentive per field rep
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=[]domain.FieldRepBusinessStat}
// @Security BearerAuth
// @Router /analytics/field-reps [get]
func (h *AnalyticsHandler) FieldReps(c *gin.Context) {
	stats, err := h.analyticsService.FieldRepStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, stats, len(stats))
}

// Dashboard handles GET /api/v1/analytics/dashboard
// @Summary Admin dashboard cards
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardSummary}
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	summary, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// ExpenseSummary handles GET /api/v1/analytics/expenses/summary?month=&field_rep_id=
func (h *AnalyticsHandler) ExpenseSummary(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.ExpenseSummary(c.Request.Context(), actor, c.Query("field_rep_id"), c.Query("month"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Tracking handles GET /api/v1/analytics/tracking?date=&territory=&status=&q=
// @Summary Per-rep working status and punches for one day
// @Description Working counts the whole roster; the rows honour the filters.
// @Tags analytics
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param territory query string false "Territory"
// @Param status query string false "working, off or inactive"
// @Param q query string false "Search by rep name"
// @Success 200 {object} Response{data=domain.DailyTracking}
// @Failure 400 {object} ErrorResponseBody
// @Failure 403 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /analytics/tracking [get]
func (h *AnalyticsHandler) Tracking(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	filter := domain.TrackingFilter{
		Territory: c.Query("territory"),
		Status:    domain.TrackingStatus(c.Query("status")),
		Search:    c.Query("q"),
	}

	tracking, err := h.analyticsService.DailyTracking(c.Request.Context(), actor, c.Query("date"), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tracking)
}

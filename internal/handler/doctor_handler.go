package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// DoctorHandler handles doctor master data and per-doctor analytics.
type DoctorHandler struct {
	masterService    service.MasterService
	analyticsService service.AnalyticsService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(masterService service.MasterService, analyticsService service.AnalyticsService) *DoctorHandler {
	return &DoctorHandler{masterService: masterService, analyticsService: analyticsService}
}

// List handles GET /api/v1/doctors
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Success 200 {object} Response{data=[]domain.Doctor}
// @Failure 401 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /doctors [get]
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.masterService.ListDoctors(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, doctors, len(doctors))
}

// GetByID handles GET /api/v1/doctors/:id
// @Summary Get a doctor
// @Tags doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} Response{data=domain.Doctor}
// @Failure 404 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *gin.Context) {
	doctor, err := h.masterService.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doctor)
}

// Create handles POST /api/v1/doctors
// @Summary Add a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Param body body CreateDoctorRequest true "Doctor"
// @Success 201 {object} Response{data=domain.Doctor}
// @Failure 400 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /doctors [post]
func (h *DoctorHandler) Create(c *gin.Context) {
	var input service.CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doctor, err := h.masterService.CreateDoctor(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, doctor)
}

// Visits handles GET /api/v1/doctors/:id/visits
// @Summary Visit history for a doctor, newest first
// @Tags doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} Response{data=[]domain.DoctorVisit}
// @Failure 401 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /doctors/{id}/visits [get]
func (h *DoctorHandler) Visits(c *gin.Context) {
	visits, err := h.analyticsService.DoctorVisits(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, visits, len(visits))
}

// Activity handles GET /api/v1/doctors/:id/activity
// @Summary Weekly activity and last visit for a doctor
// @Tags doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} Response{data=domain.DoctorActivity}
// @Failure 401 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /doctors/{id}/activity [get]
func (h *DoctorHandler) Activity(c *gin.Context) {
	activity, err := h.analyticsService.DoctorActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, activity)
}

// Nearby handles GET /api/v1/doctors/nearby?lat=&lng=
// @Summary Doctors sorted by distance from a point
// @Tags doctors
// @Produce json
// @Param lat query number true "Latitude, -90 to 90"
// @Param lng query number true "Longitude, -180 to 180"
// @Success 200 {object} Response{data=[]domain.DoctorDistance}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /doctors/nearby [get]
func (h *DoctorHandler) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_COORDINATES", "lat and lng must be numbers")
		return
	}
	if !validCoordinate(lat, 90) || !validCoordinate(lng, 180) {
		HandleError(c, domain.ErrInvalidCoordinates)
		return
	}

	doctors, err := h.analyticsService.DoctorsByDistance(c.Request.Context(), lat, lng)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, doctors, len(doctors))
}

// validCoordinate reports whether v is finite and within ±limit.
func validCoordinate(v, limit float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -limit && v <= limit
}

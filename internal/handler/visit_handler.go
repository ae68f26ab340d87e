package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/service"
)

// VisitHandler handles doctor and shop visit logging.
type VisitHandler struct {
	visitService service.VisitService
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(visitService service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// RecordVisit handles POST /api/v1/visits
// @Summary Log a doctor visit
// @Description MR users always log against their own field rep.
// @Tags visits
// @Accept json
// @Produce json
// @Param body body RecordVisitRequest true "Visit"
// @Success 201 {object} Response{data=domain.DoctorVisit}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Failure 422 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /visits [post]
func (h *VisitHandler) RecordVisit(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var input service.RecordVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	visit, err := h.visitService.RecordVisit(c.Request.Context(), actor, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, visit)
}

// RecordShopVisit handles POST /api/v1/shop-visits
// @Summary Log a chemist shop visit
// @Tags visits
// @Accept json
// @Produce json
// @Param body body RecordShopVisitRequest true "Shop visit"
// @Success 201 {object} Response{data=domain.ShopVisit}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /shop-visits [post]
func (h *VisitHandler) RecordShopVisit(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var input service.RecordShopVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	visit, err := h.visitService.RecordShopVisit(c.Request.Context(), actor, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, visit)
}

// ListShopVisits handles GET /api/v1/shop-visits?field_rep_id=&date=
func (h *VisitHandler) ListShopVisits(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	visits, err := h.visitService.ListShopVisits(c.Request.Context(), actor, c.Query("field_rep_id"), c.Query("date"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, visits, len(visits))
}

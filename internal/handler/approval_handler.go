package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// ApprovalHandler handles the daily report approval workflow.
type ApprovalHandler struct {
	approvalService service.ApprovalService
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(approvalService service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// List handles GET /api/v1/approvals?status=&field_rep_id=&q=
// @Summary List daily approvals
// @Description Counts cover the whole log; the list honours the filters.
// @Tags approvals
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param field_rep_id query string false "Field rep ID"
// @Param q query string false "Search by rep name or date"
// @Success 200 {object} Response{data=domain.ApprovalList}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /approvals [get]
func (h *ApprovalHandler) List(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	filter := domain.ApprovalFilter{
		Status:     domain.ApprovalStatus(c.Query("status")),
		FieldRepID: c.Query("field_rep_id"),
		Search:     c.Query("q"),
	}

	list, err := h.approvalService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, list)
}

// GetByID handles GET /api/v1/approvals/:id
func (h *ApprovalHandler) GetByID(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	approval, err := h.approvalService.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, approval)
}

// Approve handles POST /api/v1/approvals/:id/approve
// @Summary Approve a pending daily report
// @Tags approvals
// @Produce json
// @Param id path string true "Approval ID"
// @Success 200 {object} Response{data=domain.DailyApproval}
// @Failure 404 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	approval, err := h.approvalService.Approve(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, approval)
}

// Reject handles POST /api/v1/approvals/:id/reject
// @Summary Reject a pending daily report
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval ID"
// @Param body body RejectRequest true "Reason"
// @Success 200 {object} Response{data=domain.DailyApproval}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /approvals/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	approval, err := h.approvalService.Reject(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, approval)
}

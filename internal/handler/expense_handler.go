package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/service"
)

// ExpenseHandler handles daily expense submission.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Submit handles PUT /api/v1/expenses
// @Summary Submit or replace the day's expense
// @Description Creates the rep-day approval on first submission and replaces the expense while it is still pending.
// @Tags expenses
// @Accept json
// @Produce json
// @Param body body SubmitExpenseRequest true "Expense"
// @Success 200 {object} Response{data=domain.DailyApproval}
// @Failure 400 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /expenses [put]
func (h *ExpenseHandler) Submit(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var input service.SubmitExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	approval, err := h.expenseService.Submit(c.Request.Context(), actor, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, approval)
}

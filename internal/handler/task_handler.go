package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// TaskHandler handles doctor visit assignments.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /api/v1/tasks?status=&field_rep_id=&q=
// @Summary List assigned tasks, newest first
// @Description Counts cover the caller's reps; the list honours every filter.
// @Tags tasks
// @Produce json
// @Param status query string false "pending or completed"
// @Param field_rep_id query string false "Field rep ID"
// @Param q query string false "Search by rep or doctor name"
// @Success 200 {object} Response{data=domain.TaskList}
// @Failure 400 {object} ErrorResponseBody
// @Failure 403 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	filter := domain.TaskFilter{
		FieldRepID: c.Query("field_rep_id"),
		Status:     domain.TaskStatus(c.Query("status")),
		Search:     c.Query("q"),
	}

	list, err := h.taskService.List(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, list)
}

// Agenda handles GET /api/v1/tasks/agenda?field_rep_id=
// @Summary Today's tasks and upcoming pending tasks for a rep
// @Tags tasks
// @Produce json
// @Param field_rep_id query string false "Field rep ID, required for admins"
// @Success 200 {object} Response{data=domain.TaskAgenda}
// @Failure 403 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /tasks/agenda [get]
func (h *TaskHandler) Agenda(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	agenda, err := h.taskService.Agenda(c.Request.Context(), actor, c.Query("field_rep_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, agenda)
}

// Assign handles POST /api/v1/tasks
// @Summary Assign a doctor visit to a field rep
// @Tags tasks
// @Accept json
// @Produce json
// @Param body body AssignTaskRequest true "Task"
// @Success 201 {object} Response{data=domain.Task}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Failure 422 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) Assign(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var input service.AssignTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	task, err := h.taskService.Assign(c.Request.Context(), actor, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, task)
}

// Complete handles PATCH /api/v1/tasks/:id/complete
// @Summary Mark a task as done
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} Response{data=domain.Task}
// @Failure 403 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /tasks/{id}/complete [patch]
func (h *TaskHandler) Complete(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	task, err := h.taskService.Complete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, task)
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mrtrack/internal/domain"
	"mrtrack/internal/handler"
	"mrtrack/internal/service"
	"mrtrack/mocks"
)

func newTaskHandler() (*handler.TaskHandler, *mocks.MockTaskService) {
	taskSvc := new(mocks.MockTaskService)
	return handler.NewTaskHandler(taskSvc), taskSvc
}

func TestTaskHandler_Assign(t *testing.T) {
	h, taskSvc := newTaskHandler()
	taskSvc.On("Assign", mock.Anything, adminActor, mock.MatchedBy(func(in *service.AssignTaskInput) bool {
		return in.FieldRepID == "mr1" && in.DoctorID == "d3" && in.Date == "2024-03-18" && in.Time == "11:00"
	})).Return(&domain.Task{ID: "t1", FieldRepID: "mr1", DoctorID: "d3", Status: domain.TaskStatusPending}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tasks",
		jsonBody(`{"field_rep_id":"mr1","doctor_id":"d3","date":"2024-03-18","time":"11:00"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, adminActor)

	h.Assign(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	taskSvc.AssertExpectations(t)
}

func TestTaskHandler_Assign_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "missing doctor", body: `{"field_rep_id":"mr1"}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "bad time", body: `{"field_rep_id":"mr1","doctor_id":"d1","time":"25:00"}`, svcErr: domain.ErrInvalidTime, wantStatus: http.StatusBadRequest, wantCode: "INVALID_TIME"},
		{name: "inactive rep", body: `{"field_rep_id":"mr2","doctor_id":"d1"}`, svcErr: domain.ErrFieldRepInactive, wantStatus: http.StatusUnprocessableEntity, wantCode: "FIELD_REP_INACTIVE"},
		{name: "unknown doctor", body: `{"field_rep_id":"mr1","doctor_id":"d42"}`, svcErr: domain.ErrDoctorNotFound, wantStatus: http.StatusNotFound, wantCode: "DOCTOR_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, taskSvc := newTaskHandler()
			if tt.svcErr != nil {
				taskSvc.On("Assign", mock.Anything, adminActor, mock.Anything).Return(nil, tt.svcErr)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tasks", jsonBody(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			setAuthContext(c, adminActor)

			h.Assign(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w).Error.Code)
		})
	}
}

func TestTaskHandler_List_PassesFilter(t *testing.T) {
	h, taskSvc := newTaskHandler()
	filter := domain.TaskFilter{FieldRepID: "mr1", Status: domain.TaskStatusPending, Search: "sharma"}
	taskSvc.On("List", mock.Anything, mrActor, filter).Return(&domain.TaskList{
		Counts: domain.TaskCounts{Total: 2, Pending: 2},
		Tasks:  []domain.Task{{ID: "t1"}},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/tasks?field_rep_id=mr1&status=pending&q=sharma", http.NoBody)
	setAuthContext(c, mrActor)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	taskSvc.AssertExpectations(t)
}

func TestTaskHandler_Agenda(t *testing.T) {
	h, taskSvc := newTaskHandler()
	taskSvc.On("Agenda", mock.Anything, mrActor, "").Return(&domain.TaskAgenda{
		Date:         "2024-03-15",
		Today:        []domain.Task{{ID: "t1"}},
		PendingToday: 1,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/tasks/agenda", http.NoBody)
	setAuthContext(c, mrActor)

	h.Agenda(c)

	assert.Equal(t, http.StatusOK, w.Code)
	taskSvc.AssertExpectations(t)
}

func TestTaskHandler_Complete_AlreadyDone(t *testing.T) {
	h, taskSvc := newTaskHandler()
	taskSvc.On("Complete", mock.Anything, mrActor, "t1").Return(nil, domain.ErrTaskNotPending)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/api/v1/tasks/t1/complete", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}
	setAuthContext(c, mrActor)

	h.Complete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TASK_NOT_PENDING", decode(t, w).Error.Code)
}

func TestTaskHandler_Delete(t *testing.T) {
	h, taskSvc := newTaskHandler()
	taskSvc.On("Delete", mock.Anything, adminActor, "t1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/tasks/t1", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}
	setAuthContext(c, adminActor)

	h.Delete(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	taskSvc.AssertExpectations(t)
}

func TestTaskHandler_Delete_Unknown(t *testing.T) {
	h, taskSvc := newTaskHandler()
	taskSvc.On("Delete", mock.Anything, adminActor, "t9").Return(domain.ErrTaskNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/tasks/t9", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "t9"}}
	setAuthContext(c, adminActor)

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TASK_NOT_FOUND", decode(t, w).Error.Code)
}

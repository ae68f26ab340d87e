package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mrtrack/internal/domain"
	"mrtrack/internal/handler"
	"mrtrack/internal/service"
	"mrtrack/mocks"
)

func newDoctorHandler() (*handler.DoctorHandler, *mocks.MockMasterService, *mocks.MockAnalyticsService) {
	masterSvc := new(mocks.MockMasterService)
	analyticsSvc := new(mocks.MockAnalyticsService)
	return handler.NewDoctorHandler(masterSvc, analyticsSvc), masterSvc, analyticsSvc
}

func TestDoctorHandler_List(t *testing.T) {
	h, masterSvc, _ := newDoctorHandler()
	masterSvc.On("ListDoctors", mock.Anything).Return([]domain.Doctor{{ID: "d1"}, {ID: "d2"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestDoctorHandler_GetByID_NotFound(t *testing.T) {
	h, masterSvc, _ := newDoctorHandler()
	masterSvc.On("GetDoctor", mock.Anything, "d42").Return(nil, domain.ErrDoctorNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors/d42", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "d42"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DOCTOR_NOT_FOUND", decode(t, w).Error.Code)
}

func TestDoctorHandler_Create(t *testing.T) {
	h, masterSvc, _ := newDoctorHandler()
	masterSvc.On("CreateDoctor", mock.Anything, mock.MatchedBy(func(in *service.CreateDoctorInput) bool {
		return in.Name == "Dr. Anil Rao" && in.Location != nil && in.Location.Lat == 19.1
	})).Return(&domain.Doctor{ID: "d9", Name: "Dr. Anil Rao"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/doctors",
		strings.NewReader(`{"name":"Dr. Anil Rao","location":{"lat":19.1,"lng":72.9}}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	masterSvc.AssertExpectations(t)
}

func TestDoctorHandler_Create_MissingName(t *testing.T) {
	h, masterSvc, _ := newDoctorHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/doctors", strings.NewReader(`{"town":"Pune"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	masterSvc.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.Anything)
}

func TestDoctorHandler_Nearby(t *testing.T) {
	h, _, analyticsSvc := newDoctorHandler()
	km := 1.2
	analyticsSvc.On("DoctorsByDistance", mock.Anything, 19.07, 72.87).
		Return([]domain.DoctorDistance{{Doctor: domain.Doctor{ID: "d1"}, DistanceKm: &km}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors/nearby?lat=19.07&lng=72.87", http.NoBody)

	h.Nearby(c)

	assert.Equal(t, http.StatusOK, w.Code)
	analyticsSvc.AssertExpectations(t)
}

func TestDoctorHandler_Nearby_BadCoordinates(t *testing.T) {
	h, _, analyticsSvc := newDoctorHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors/nearby?lat=north", http.NoBody)

	h.Nearby(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_COORDINATES", decode(t, w).Error.Code)
	analyticsSvc.AssertNotCalled(t, "DoctorsByDistance", mock.Anything, mock.Anything, mock.Anything)
}

func TestDoctorHandler_Nearby_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "NaN latitude", query: "lat=NaN&lng=72.87"},
		{name: "infinite longitude", query: "lat=19.07&lng=Inf"},
		{name: "negative infinity", query: "lat=-Inf&lng=72.87"},
		{name: "latitude above 90", query: "lat=90.5&lng=72.87"},
		{name: "latitude below -90", query: "lat=-91&lng=72.87"},
		{name: "longitude above 180", query: "lat=19.07&lng=181"},
		{name: "longitude below -180", query: "lat=19.07&lng=-180.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, analyticsSvc := newDoctorHandler()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors/nearby?"+tt.query, http.NoBody)

			h.Nearby(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "INVALID_COORDINATES", decode(t, w).Error.Code)
			analyticsSvc.AssertNotCalled(t, "DoctorsByDistance", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDoctorHandler_Nearby_BoundaryValuesAccepted(t *testing.T) {
	h, _, analyticsSvc := newDoctorHandler()
	analyticsSvc.On("DoctorsByDistance", mock.Anything, -90.0, 180.0).Return([]domain.DoctorDistance{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors/nearby?lat=-90&lng=180", http.NoBody)

	h.Nearby(c)

	assert.Equal(t, http.StatusOK, w.Code)
	analyticsSvc.AssertExpectations(t)
}

func TestDoctorHandler_Activity(t *testing.T) {
	h, _, analyticsSvc := newDoctorHandler()
	analyticsSvc.On("DoctorActivity", mock.Anything, "d1").
		Return(&domain.DoctorActivity{DoctorID: "d1", WeeklyVisits: 2, VisitedThisWeek: true}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors/d1/activity", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "d1"}}

	h.Activity(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["weekly_visits"])
}

func TestDoctorHandler_Visits_UnknownDoctorIsEmptyList(t *testing.T) {
	h, _, analyticsSvc := newDoctorHandler()
	analyticsSvc.On("DoctorVisits", mock.Anything, "d42").Return([]domain.DoctorVisit{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/doctors/d42/visits", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "d42"}}

	h.Visits(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Meta.Total)
	assert.Equal(t, []interface{}{}, resp.Data)
}

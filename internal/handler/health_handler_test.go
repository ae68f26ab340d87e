package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mrtrack/internal/handler"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/healthz", http.NoBody)

	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		checks []handler.ReadinessCheck
		status int
	}{
		{"no checks", nil, http.StatusOK},
		{"all healthy", []handler.ReadinessCheck{
			{Name: "postgres", Check: func(context.Context) error { return nil }},
		}, http.StatusOK},
		{"redis down", []handler.ReadinessCheck{
			{Name: "postgres", Check: func(context.Context) error { return nil }},
			{Name: "redis", Check: func(context.Context) error { return errors.New("dial tcp: refused") }},
		}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(tt.checks...)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)

			h.Readiness(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				assert.Contains(t, w.Body.String(), "redis not reachable")
			}
		})
	}
}

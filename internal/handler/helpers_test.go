package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mrtrack/internal/domain"
	"mrtrack/internal/handler"
	"mrtrack/internal/middleware"
	"mrtrack/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	adminActor = service.Actor{UserID: "u-admin", Username: "admin", Name: "Admin", Role: domain.RoleAdmin}
	mrActor    = service.Actor{UserID: "u-mr1", Username: "rahul.kumar", Name: "Rahul Kumar", Role: domain.RoleMR, FieldRepID: "mr1"}
)

// setAuthContext populates the Gin context the way AuthMiddleware does.
func setAuthContext(c *gin.Context, actor service.Actor) {
	claims := &service.Claims{
		UserID:     actor.UserID,
		Username:   actor.Username,
		Name:       actor.Name,
		Role:       actor.Role,
		FieldRepID: actor.FieldRepID,
	}
	c.Set(middleware.ContextKeyUserID, actor.UserID)
	c.Set(middleware.ContextKeyUsername, actor.Username)
	c.Set(middleware.ContextKeyRole, string(actor.Role))
	c.Set(middleware.ContextKeyFieldRepID, actor.FieldRepID)
	c.Set(middleware.ContextKeyClaims, claims)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

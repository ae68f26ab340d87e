package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/domain"
)

// FieldRepGuard rejects MR tokens that are not bound to a field rep.
// It relies on AuthMiddleware having already set the role and field_rep_id.
func FieldRepGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != string(domain.RoleMR) {
			c.Next()
			return
		}
		repID, _ := c.Get(ContextKeyFieldRepID)
		if id, ok := repID.(string); !ok || id == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "user is not linked to a field rep"},
			})
			return
		}
		c.Next()
	}
}

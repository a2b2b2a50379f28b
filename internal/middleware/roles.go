package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// RequireCapability creates a Gin middleware that rejects requests from users
// whose role does not grant the capability. Authorization is a flat predicate
// lookup on the role's capability set, never an ordering between roles.
func RequireCapability(capability domain.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !user.Role.Can(capability) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Capability denied",
				slog.String("user_id", user.UserID),
				slog.String("role", string(user.Role)),
				slog.String("capability", string(capability)),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}

		c.Next()
	}
}

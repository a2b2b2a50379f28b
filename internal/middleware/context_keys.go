package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

const currentUserKey = contextKey("currentUser")

// SetCurrentUser stores the authenticated user's identity in the Gin context.
func SetCurrentUser(c *gin.Context, user domain.User) {
	c.Set(string(currentUserKey), user)
}

// GetCurrentUser retrieves the authenticated user from the Gin context. It
// returns the user and a boolean indicating if one was found.
func GetCurrentUser(c *gin.Context) (domain.User, bool) {
	val, exists := c.Get(string(currentUserKey))
	if !exists {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	if !ok {
		return domain.User{}, false
	}
	return user, true
}

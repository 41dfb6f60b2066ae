// internal/middleware/auth.go
package middleware

import (
	"log/slog"

	"finance-tracker/internal/response"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Authenticator turns an Authorization header into a subject id.
type Authenticator interface {
	Authenticate(header string) (int64, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(a Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: a}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := m.auth.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			slog.Debug("Auth rejected", "path", c.Request.URL.Path, "error", err)
			response.Abort(c, err)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated subject set by RequireAuth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

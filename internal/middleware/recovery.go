// internal/middleware/recovery.go
package middleware

import (
	"fmt"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the redacted 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		response.Abort(c, domain.Internal(fmt.Errorf("panic: %v", rec)))
	})
}

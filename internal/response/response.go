// internal/response/response.go

// Package response builds the {message, data?} JSON envelope and maps tagged
// errors to HTTP statuses.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(k domain.Kind) int {
	switch k {
	case domain.KindAuthMissing, domain.KindAuthInvalid:
		return http.StatusUnauthorized
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func OK(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, Envelope{Message: msg, Data: data})
}

// Error writes err as an error envelope. Internal causes are logged and
// never sent to the client.
func Error(c *gin.Context, err error) {
	status, env := build(c, err)
	c.JSON(status, env)
}

// Abort is Error for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	status, env := build(c, err)
	c.AbortWithStatusJSON(status, env)
}

func build(c *gin.Context, err error) (int, Envelope) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.Internal(err)
	}
	status := StatusOf(de.Kind)

	if de.Kind == domain.KindInternal {
		slog.Error("Request failed",
			"error", de.Err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
		)
		return status, Envelope{Message: "Something went wrong"}
	}

	_ = c.Error(err)
	return status, Envelope{Message: de.Message, Error: de.Detail}
}

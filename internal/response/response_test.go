// internal/response/response_test.go
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/Entities", nil)
	fn(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, StatusOf(domain.KindAuthMissing))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(domain.KindAuthInvalid))
	assert.Equal(t, http.StatusBadRequest, StatusOf(domain.KindValidation))
	assert.Equal(t, http.StatusNotFound, StatusOf(domain.KindNotFound))
	assert.Equal(t, http.StatusConflict, StatusOf(domain.KindConflict))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(domain.KindInternal))
}

func TestOKWithData(t *testing.T) {
	w, body := run(t, func(c *gin.Context) {
		OK(c, http.StatusCreated, "Entity created successfully", gin.H{"id": 1})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Entity created successfully", body["message"])
	assert.Equal(t, map[string]any{"id": float64(1)}, body["data"])
}

func TestOKWithoutDataOmitsData(t *testing.T) {
	_, body := run(t, func(c *gin.Context) { OK(c, http.StatusOK, "done", nil) })
	assert.Equal(t, map[string]any{"message": "done"}, body)
}

func TestErrorTagged(t *testing.T) {
	w, body := run(t, func(c *gin.Context) {
		Error(c, fmt.Errorf("create: %w", domain.NotFound("Entity", "Acme")))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entity Acme not found", body["message"])
	assert.NotContains(t, body, "error")
}

func TestErrorValidationDetail(t *testing.T) {
	w, body := run(t, func(c *gin.Context) {
		Error(c, domain.Validation("Missing required fields: id", "id is required"))
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id is required", body["error"])
}

func TestErrorInternalIsRedacted(t *testing.T) {
	w, body := run(t, func(c *gin.Context) {
		Error(c, errors.New("pq: password authentication failed for user admin"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]any{"message": "Something went wrong"}, body)
}

package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/src/core/domain"
)

func TestFromDomainErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.NewNotFoundError("post"), http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.NewForbiddenError("only the post owner can delete it"), http.StatusForbidden, "FORBIDDEN"},
		{"validation", domain.NewValidationError("title", "must not be empty"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"conflict", domain.NewConflictError("email already registered"), http.StatusConflict, "CONFLICT"},
		{"unauthorized", domain.NewUnauthorizedError("invalid credentials"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown", assertableErr{}, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromDomainError(c, tt.err, "req-1")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromDomainError(c, domain.NewValidationError("title", "must not be empty"), "req-2")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"title"`)
}

type assertableErr struct{}

func (assertableErr) Error() string { return "boom" }

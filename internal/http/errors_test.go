package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/foodbot-ai/dashboard-api/internal/domain/auth"
	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
)

func TestWriteAppError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperrors.NotFound("missing"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("duplicate"), http.StatusConflict},
		{"validation", apperrors.Validation("bad input"), http.StatusBadRequest},
		{"upstream", apperrors.Upstream("webhook down"), http.StatusBadGateway},
		{"internal", apperrors.Internal("boom"), http.StatusInternalServerError},
		{"plain error", errors.New("untyped"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			WriteAppError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHasRequiredRole(t *testing.T) {
	t.Parallel()

	assert.True(t, hasRequiredRole(domainauth.RoleAdmin, domainauth.RoleAdmin))
	assert.True(t, hasRequiredRole(domainauth.RoleAdmin, domainauth.RoleUser))
	assert.True(t, hasRequiredRole(domainauth.RoleUser, domainauth.RoleUser))
	assert.False(t, hasRequiredRole(domainauth.RoleUser, domainauth.RoleAdmin))
	assert.False(t, hasRequiredRole(domainauth.Role("guest"), domainauth.RoleUser))
}

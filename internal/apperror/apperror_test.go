package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("", nil, nil), http.StatusBadRequest},
		{NotAuthenticated("", nil), http.StatusUnauthorized},
		{Forbidden("", nil), http.StatusForbidden},
		{NotFound("", nil), http.StatusNotFound},
		{Conflict("", nil), http.StatusConflict},
		{NotImplemented("", nil), http.StatusNotImplemented},
		{Internal("", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.StatusCode(), tt.err.Message)
	}
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Validation error", Validation("", nil, nil).Message)
	assert.Equal(t, "User not authenticated", NotAuthenticated("", nil).Message)
	assert.Equal(t, "User not authorized to perform this action", Forbidden("", nil).Message)
	assert.Equal(t, "Resource not found", NotFound("", nil).Message)
	assert.Equal(t, "Resource conflicted", Conflict("", nil).Message)
	assert.Equal(t, "Internal server error", Internal("", nil).Message)
}

func TestFromCoercesUnknownErrors(t *testing.T) {
	appErr := From(errors.New("sql: connection refused"))

	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.NotContains(t, appErr.Message, "sql")
}

func TestFromKeepsClassifiedErrors(t *testing.T) {
	original := NotFound("User not found", map[string]any{"id": "u-1"})
	wrapped := fmt.Errorf("lookup: %w", original)

	appErr := From(wrapped)
	assert.Same(t, original, appErr)
}

func TestIsKind(t *testing.T) {
	err := Conflict("User already exists", nil)

	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindConflict))
	assert.False(t, IsKind(nil, KindInternal))
}

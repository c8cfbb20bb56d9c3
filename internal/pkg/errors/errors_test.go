package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New(CodeTopicNotFound, "Topic not found", http.StatusNotFound)
	assert.Equal(t, "TOPIC_NOT_FOUND: Topic not found", e.Error())

	wrapped := Wrap(errors.New("row missing"), CodeTopicNotFound, "Topic not found", http.StatusNotFound)
	assert.Equal(t, "TOPIC_NOT_FOUND: Topic not found: row missing", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, CodeUserNotFound, "User not found", http.StatusNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestConstructors_Status(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound(CodeUserNotFound, "User not found"), http.StatusNotFound},
		{"bad request", BadRequest(CodeValidationFailed, "invalid"), http.StatusBadRequest},
		{"unauthorized", Unauthorized(CodeTokenInvalid, "invalid token"), http.StatusUnauthorized},
		{"forbidden", Forbidden(CodeTopicForbidden, "not the owner"), http.StatusForbidden},
		{"internal", Internal(CodeInternal, "boom"), http.StatusInternalServerError},
		{"topic not active", ErrTopicNotActive(), http.StatusBadRequest},
		{"self comment", ErrSelfComment(), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus)
		})
	}
}

func TestIsAppError(t *testing.T) {
	appErr, ok := IsAppError(fmt.Errorf("handler: %w", Forbidden(CodeTopicForbidden, "not the owner")))
	require.True(t, ok)
	assert.Equal(t, CodeTopicForbidden, appErr.Code)

	_, ok = IsAppError(errors.New("plain"))
	assert.False(t, ok)
}

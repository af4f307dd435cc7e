package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewValidationError("capacity", "range"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"wrapped duplicate", fmt.Errorf("register category: %w", ErrDuplicateName), http.StatusConflict, "DUPLICATE_NAME"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"user not found", ErrUserNotFound, http.StatusUnauthorized, "USER_NOT_FOUND"},
		{"invalid password", ErrInvalidPassword, http.StatusUnauthorized, "INVALID_PASSWORD"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestAuthenticationErrorsShareParent(t *testing.T) {
	assert.ErrorIs(t, ErrUserNotFound, ErrAuthentication)
	assert.ErrorIs(t, ErrInvalidPassword, ErrAuthentication)
	assert.NotErrorIs(t, ErrUserNotFound, ErrInvalidPassword)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "min", "email": "required"}}

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: email: required, name: min", err.Error())

	resp := MapErrorToHTTP(fmt.Errorf("create event: %w", err)).ToErrorResponse()
	assert.Equal(t, "min", resp.Fields["name"])
}

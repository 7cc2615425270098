package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "duration is required")
			},
			expected: "VALIDATION_ERROR: duration is required",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection reset")
				return Wrap(UpstreamError, "geocoding request failed", cause)
			},
			expected: "UPSTREAM_ERROR: geocoding request failed (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.setup().Error())
		})
	}
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		hasCause     bool
	}{
		{"NewValidationError", NewValidationError("bad"), ValidationError, false},
		{"NewNotFoundError", NewNotFoundError("missing"), NotFoundError, false},
		{"NewAlreadyExistsError", NewAlreadyExistsError("dup"), AlreadyExistsError, false},
		{"NewAuthError", NewAuthError("Invalid credentials"), AuthError, false},
		{"NewDatabaseError", NewDatabaseError("query failed", fmt.Errorf("x")), DatabaseError, true},
		{"NewExternalAPIError", NewExternalAPIError("upstream", fmt.Errorf("x")), UpstreamError, true},
		{"NewMalformedResponseError", NewMalformedResponseError("shape", nil), MalformedResponseError, false},
		{"NewConfigurationError", NewConfigurationError("cfg", fmt.Errorf("x")), ConfigurationError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedType, tt.err.Type)
			if tt.hasCause {
				assert.NotNil(t, tt.err.Cause)
			} else {
				assert.Nil(t, tt.err.Cause)
			}
		})
	}
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ValidationError, "VALIDATION_ERROR"},
		{NotFoundError, "NOT_FOUND_ERROR"},
		{AlreadyExistsError, "ALREADY_EXISTS_ERROR"},
		{AuthError, "AUTH_ERROR"},
		{DatabaseError, "DATABASE_ERROR"},
		{UpstreamError, "UPSTREAM_ERROR"},
		{MalformedResponseError, "MALFORMED_RESPONSE_ERROR"},
		{ConfigurationError, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeHelpers_SeeThroughWrapping(t *testing.T) {
	base := NewNotFoundError("trip not found")
	wrapped := fmt.Errorf("load trip 7: %w", base)

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Equal(t, NotFoundError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.False(t, IsUpstreamError(nil))
}

func TestErrorChaining(t *testing.T) {
	original := fmt.Errorf("connection refused")
	dbErr := NewDatabaseError("query failed", original)
	outer := Wrap(UpstreamError, "service unavailable", dbErr)

	expected := "UPSTREAM_ERROR: service unavailable (caused by: DATABASE_ERROR: query failed (caused by: connection refused))"
	assert.Equal(t, expected, outer.Error())
	assert.Equal(t, dbErr, outer.Unwrap())
	assert.Equal(t, original, dbErr.Unwrap())
	assert.True(t, IsUpstreamError(outer))
}

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
				return New(NotFoundError, "file not found")
			},
			expected: "NOT_FOUND_ERROR: file not found",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("permission denied")
				return Wrap(ReadFailureError, "cannot open file", cause)
			},
			expected: "READ_FAILURE_ERROR: cannot open file (caused by: permission denied)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")

	assert.Equal(t, cause, NewReadFailureError("read failed", cause).Unwrap())
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeRateLimited, "RATE_LIMITED_ERROR"},
		{ErrorTypeReadFailure, "READ_FAILURE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeOf_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("serve asset: %w", NewNotFoundError("missing"))

	assert.Equal(t, ErrorTypeNotFound, TypeOf(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsReadFailureError(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
}

func TestHelperFunctions(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsReadFailureError(NewReadFailureError("denied", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("bad config", nil)))
	assert.False(t, IsConfigurationError(NewValidationError("bad")))
}

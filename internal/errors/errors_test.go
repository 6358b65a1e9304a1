package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("permission denied"),
			},
			expected: "input: failed to read input: permission denied",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParsing,
				Message: "invalid JSON syntax",
				Err:     nil,
			},
			expected: "parsing: invalid JSON syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	appErr := NewInputError("file 'a.txt' not found", ErrFileNotFound)

	assert.Equal(t, ErrFileNotFound, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, ErrFileNotFound))
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "same type",
			appError: NewMergeError("a", nil),
			target:   NewMergeError("b", errors.New("c")),
			expected: true,
		},
		{
			name:     "different type",
			appError: NewInputError("a", nil),
			target:   NewParsingError("a", nil),
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: NewInputError("a", nil),
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Is(tt.target))
		})
	}
}

func TestNewUsageError_WrapsSentinel(t *testing.T) {
	err := NewUsageError("expected at least 2 arguments")

	assert.Equal(t, ErrorTypeUsage, err.Type)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "usage error",
			err:      NewUsageError("missing output path"),
			expected: "Usage error: missing output path",
		},
		{
			name:     "input error",
			err:      NewInputError("missing.txt not found", ErrFileNotFound),
			expected: "Error: missing.txt not found",
		},
		{
			name:     "parsing error",
			err:      NewParsingError("JSON syntax error at offset 4", ErrInvalidJSON),
			expected: "JSON parsing error: JSON syntax error at offset 4",
		},
		{
			name:     "merge error",
			err:      NewMergeError("nothing to merge", ErrNoDocuments),
			expected: "Merge error: nothing to merge",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write output", nil),
			expected: "Output error: failed to write output",
		},
		{
			name:     "config error",
			err:      NewConfigError("bad indent", nil),
			expected: "Config error: bad indent",
		},
		{
			name:     "standard error - empty input",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name:     "standard error - invalid JSON",
			err:      ErrInvalidJSON,
			expected: "Error: The input contains invalid JSON. Please check your JSON syntax.",
		},
		{
			name:     "standard error - too deep",
			err:      ErrTooDeep,
			expected: "Error: The input is nested too deeply.",
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}

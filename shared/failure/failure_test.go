package failure_test

import (
	"errors"
	"net/http"
	"testing"
	"trimly/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "booking date must not be in the past",
	}

	assert.Equal(t, "booking date must not be in the past", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("invalid slot time")),
			code:    http.StatusBadRequest,
			message: "invalid slot time",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("rating must be between 1 and 5"),
			code:    http.StatusBadRequest,
			message: "rating must be between 1 and 5",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("refresh token revoked"),
			code:    http.StatusUnauthorized,
			message: "refresh token revoked",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("booking belongs to another shop"),
			code:    http.StatusForbidden,
			message: "booking belongs to another shop",
		},
		{
			name:    "not found",
			err:     failure.NotFound("shop not found"),
			code:    http.StatusNotFound,
			message: "shop not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("slot is fully booked"),
			code:    http.StatusConflict,
			message: "slot is fully booked",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestForbiddenError(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
	assert.NotEmpty(t, failure.ForbiddenError.Message)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "constructed failure",
			input:    failure.Conflict("slot is fully booked"),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

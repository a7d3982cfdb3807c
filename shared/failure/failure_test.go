package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cowork/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("invalid booking window")),
			code:    http.StatusBadRequest,
			message: "invalid booking window",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("seats is required"),
			code:    http.StatusBadRequest,
			message: "seats is required",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("booking belongs to another user"),
			code:    http.StatusForbidden,
			message: "booking belongs to another user",
		},
		{
			name:    "not found",
			err:     failure.NotFound("workspace not found"),
			code:    http.StatusNotFound,
			message: "workspace not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("coupon code already exists"),
			code:    http.StatusConflict,
			message: "coupon code already exists",
		},
		{
			name:    "unprocessable entity",
			err:     failure.UnprocessableEntity("Minimum order not met"),
			code:    http.StatusUnprocessableEntity,
			message: "Minimum order not met",
		},
		{
			name:    "too many requests",
			err:     failure.TooManyRequests("try again in a minute"),
			code:    http.StatusTooManyRequests,
			message: "try again in a minute",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: "connection refused",
		},
		{
			name:    "predefined forbidden",
			err:     failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure

			require.ErrorAs(t, tt.err, &fail)
			assert.Equal(t, tt.code, fail.Code)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "failure", err: failure.NotFound("location not found"), code: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("booking: %w", failure.Conflict("duplicate")), code: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError},
		{name: "nil", err: nil, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}

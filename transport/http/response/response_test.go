package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cowork/shared/constant"
	"cowork/shared/failure"
	"cowork/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]any{"id": "bk-1", "total": 120.5})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"data":{"id":"bk-1","total":120.5}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Workspace removed from saved list")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Workspace removed from saved list"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "client failure keeps its message",
			err:  failure.NotFound("workspace not found"),
			code: http.StatusNotFound,
			body: `{"error":"workspace not found"}`,
		},
		{
			name: "unexpected error is masked",
			err:  errors.New("pq: relation \"bookings\" does not exist"),
			code: http.StatusInternalServerError,
			body: `{"error":"internal server error"}`,
		},
		{
			name: "internal failure is masked",
			err:  failure.InternalError(errors.New("dial tcp: refused")),
			code: http.StatusInternalServerError,
			body: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWithAttachment(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithAttachment(rec, constant.ContentTypeXLSX, "bookings.xlsx", []byte("xlsx"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="bookings.xlsx"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestCannedResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
